// Package mapping describes mapping files and entity filter files.
//
// A mapping file tells, for every field of an extracted model, where the
// value comes from in a primary source and which rules turn it into the
// target value. An entity filter file tells which source items are skipped.
// Both are YAML documents whose first lines name the JSON Schema they follow:
//
//	# yaml-language-server: $schema=../../__schema__/ExtractedPerson_MappingSchema.json
//
//	identifier:
//	  - fieldInPrimarySource: n/a
//	    mappingRules:
//	      - rule: Assign identifier.
//	email:
//	  - fieldInPrimarySource: mail
//	    locationInPrimarySource: ldap
//	    examplesInPrimarySource:
//	      - jane@example.org
//	    mappingRules:
//	      - forValues: null
//	        setValues: null
//	        rule: Copy the address.
//	    comment: null
//
// The package derives those JSON Schemas from the models package
// (MappingSchema, EntityFilterSchema, WriteSchemas), parses documents into
// typed records (ParseMapping, ParseFilter) and knows the on-disk layout of
// the mapping assets.
package mapping
