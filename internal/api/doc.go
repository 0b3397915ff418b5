// Package api handles incoming HTTP requests, request validation, and
// response formatting for the content generation endpoints. It adapts
// between external clients and the internal application services,
// translating HTTP concerns to business operations.
package api
