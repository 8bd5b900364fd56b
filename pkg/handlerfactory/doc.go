// Package handlerfactory contains the registries that resolve configured IO
// handler identifiers, such as "default" or "aws_s3", to the metadata and
// binarydata handlers built at startup.
package handlerfactory
