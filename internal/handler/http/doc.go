// Package http implements the REST transport of the development server.
//
// It exposes route wiring, request handlers, and middleware for the training
// API mounted under /api. Cross-cutting concerns such as CORS, request
// tracing, access logging, rate limiting and bearer authentication are
// handled in this package before requests are delegated to the service layer.
package http
