// Package app provides the main application logic for sending traced HTTP requests.
// It builds the interceptor pipeline from the configuration, sends one request per URL,
// stores or prints the responses and reports a summary.
package app
