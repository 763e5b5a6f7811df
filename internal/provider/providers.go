// File: internal/provider/providers.go
package provider

// This file explicitly imports all store implementation packages.
// The blank identifier (_) ensures that the init() function of each package runs,
// allowing them to register themselves with the central scheme registry.
//
// To add a new backend (e.g. Azure), implement the store in pkg/storage/azure
// ensuring it self-registers in its init() function, and then add the import here.

import (
	_ "s3lync/pkg/storage/aws"
	_ "s3lync/pkg/storage/gcp"
)
