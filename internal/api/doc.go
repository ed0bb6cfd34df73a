// Package api handles incoming HTTP requests, request validation, and response
// formatting. It acts as an adapter between external clients and the
// generation gateway, translating task results into the JSON envelopes and
// HTTP status codes clients expect.
package api
