// Package requests defines the request form payload and its rules.
package requests
