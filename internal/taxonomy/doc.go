// Package taxonomy builds the valid-value hierarchy of an archive.
//
// Enumerated property values are organized in four levels:
//
//	OpenMetadataTypes:ValidValues                               root
//	OpenMetadataTypes:ValidValues:Asset                         type
//	OpenMetadataTypes:ValidValues:Asset.deployedImplementationType
//	OpenMetadataTypes:ValidValues:Connection.securedProperties[userId]
//
// A category node exists once per (type, property, map name) key. Parents are
// created on demand before their children and joined by ValidValuesMember
// relationships, and every key is cached before the graph is touched again.
package taxonomy
