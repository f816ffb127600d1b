// export_test.go exports private functions for white-box testing.
package inventory

// NewClientWithHTTP is exported for testing.
var NewClientWithHTTP = newClientWithHTTP
