package omarchive

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess               = 0  // Archive written
	ExitGeneralError          = 1  // Unknown or unclassified error
	ExitUsageError            = 2  // CLI usage error (unexpected args, invalid flags)
	ExitPanic                 = 3  // Internal panic (unexpected crash)
	ExitConfigError           = 10 // Invalid configuration
	ExitGUIDConflict          = 20 // Qualified name bound to two GUIDs
	ExitDanglingReference     = 21 // Edge or lookup referenced a missing node
	ExitDuplicateTaxonomyNode = 22 // Valid-value category created twice
	ExitPersistenceFailure    = 23 // Identifier registry load/save failed
	ExitInvalidCatalogue      = 24 // Definition catalogue failed validation
	ExitOrderingError         = 25 // Processor plan violates a dependency
)

const (
	// DefaultArchiveGUID identifies the core content archive across releases.
	DefaultArchiveGUID = "7a6c9d2e-4b1f-4c3a-9e8d-5f2b1a0c6d47"

	// DefaultArchiveName is the header name of the core content archive.
	DefaultArchiveName = "CoreContentPack"

	// DefaultArchiveDescription is the header description of the core content archive.
	DefaultArchiveDescription = "Reference data, connector types, templates and governance services for an open metadata repository."

	// DefaultArchiveVersion is the header version used when none is configured.
	DefaultArchiveVersion = "1.0"

	// DefaultOriginatorName is the header originator used when none is configured.
	DefaultOriginatorName = "omarchive"

	// DefaultOriginatorOrganization is the header organization used when none is configured.
	DefaultOriginatorOrganization = "Open Metadata Community"

	// DefaultLicense is the license recorded in the archive header.
	DefaultLicense = "Apache-2.0"

	// DefaultOutputFile is the archive file written by a build.
	DefaultOutputFile = "CoreContentPack.omarchive"

	// DefaultRegistryFile is the persisted qualified-name to GUID map.
	DefaultRegistryFile = "CoreContentPack.guidmap.yaml"

	// ArchiveType is the header type of every archive this tool produces.
	ArchiveType = "CONTENT_PACK"

	// EnvPrefix is the prefix of every environment variable the build reads.
	EnvPrefix = "OMARCHIVE_"
)
