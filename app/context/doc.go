// Package context contains the application context types shared by the app,
// cli and web packages.
//
// It only exists to avoid a circular import between the app and cli packages.
package context
