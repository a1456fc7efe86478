package handler

// Pipeline defines the processing stages for HTTP requests and responses.
// It provides a fluent interface for configuring the serializer and processors.
type Pipeline struct {
	serializer         Serializer
	requestProcessors  []RequestProcessor
	responseProcessors []ResponseProcessor
}

// NewPipeline creates a new empty pipeline for configuring request/response
// processing.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// Serialize sets the response serializer for this pipeline.
func (p *Pipeline) Serialize(s Serializer) *Pipeline {
	p.serializer = s
	return p
}

// ProcessRequest adds one or more request processors to the pipeline.
func (p *Pipeline) ProcessRequest(processor ...RequestProcessor) *Pipeline {
	p.requestProcessors = append(p.requestProcessors, processor...)
	return p
}

// ProcessResponse adds one or more response processors to the pipeline.
func (p *Pipeline) ProcessResponse(processor ...ResponseProcessor) *Pipeline {
	p.responseProcessors = append(p.responseProcessors, processor...)
	return p
}
