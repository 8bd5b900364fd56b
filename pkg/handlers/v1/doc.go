// Package v1 contains the http.Handlers of the version 1.X.X API of a running
// iomigrate service. The API mirrors the AWS Lambda Invoke API so that the
// migration functions can be called the same way whether they run in this
// service or as native lambdas.
package v1
