// Package services contains the client use cases: thin wrappers that turn a
// page intent into calls against the blogging API. Request DTOs are
// validated here, before anything goes over the network.
package services
