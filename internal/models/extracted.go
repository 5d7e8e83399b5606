package models

// ExtractedData holds the provenance fields shared by all extracted models.
type ExtractedData struct {
	HadPrimarySource          MergedPrimarySourceIdentifier `json:"hadPrimarySource" mex:"required"`
	IdentifierInPrimarySource string                        `json:"identifierInPrimarySource" mex:"required"`
}

// ExtractedPerson describes a person related to a source or resource.
type ExtractedPerson struct {
	ExtractedData

	Affiliation    []MergedOrganizationIdentifier       `json:"affiliation"`
	Email          []Email                              `json:"email"`
	FamilyName     []string                             `json:"familyName"`
	FullName       []string                             `json:"fullName"`
	GivenName      []string                             `json:"givenName"`
	IsniID         []IsniID                             `json:"isniId"`
	MemberOf       []MergedOrganizationalUnitIdentifier `json:"memberOf"`
	OrcidID        []OrcidID                            `json:"orcidId"`
	Identifier     ExtractedPersonIdentifier            `json:"identifier" mex:"required"`
	StableTargetID MergedPersonIdentifier               `json:"stableTargetId" mex:"required"`
}

// ExtractedOrganizationalUnit describes a unit of an organization.
type ExtractedOrganizationalUnit struct {
	ExtractedData

	AlternativeName []Text                                `json:"alternativeName"`
	Email           []Email                               `json:"email"`
	ShortName       []Text                                `json:"shortName"`
	UnitOf          []MergedOrganizationIdentifier        `json:"unitOf"`
	Website         []Link                                `json:"website"`
	Name            []Text                                `json:"name" mex:"required"`
	ParentUnit      *MergedOrganizationalUnitIdentifier   `json:"parentUnit"`
	Identifier      ExtractedOrganizationalUnitIdentifier `json:"identifier" mex:"required"`
	StableTargetID  MergedOrganizationalUnitIdentifier    `json:"stableTargetId" mex:"required"`
}

// ExtractedPrimarySource describes a system or collection that data is extracted from.
type ExtractedPrimarySource struct {
	ExtractedData

	AlternativeTitle []Text                               `json:"alternativeTitle"`
	Contact          []MergedPersonIdentifier             `json:"contact"`
	Description      []Text                               `json:"description"`
	Documentation    []Link                               `json:"documentation"`
	LocatedAt        []Link                               `json:"locatedAt"`
	Title            []Text                               `json:"title"`
	UnitInCharge     []MergedOrganizationalUnitIdentifier `json:"unitInCharge"`
	Version          *string                              `json:"version"`
	Identifier       ExtractedPrimarySourceIdentifier     `json:"identifier" mex:"required"`
	StableTargetID   MergedPrimarySourceIdentifier        `json:"stableTargetId" mex:"required"`
}

// ExtractedOrganization describes an external organization.
type ExtractedOrganization struct {
	ExtractedData

	AlternativeName []Text                          `json:"alternativeName"`
	IsniID          []IsniID                        `json:"isniId"`
	RorID           []RorID                         `json:"rorId"`
	ShortName       []Text                          `json:"shortName"`
	WikidataID      []WikidataID                    `json:"wikidataId"`
	OfficialName    []Text                          `json:"officialName" mex:"required"`
	Identifier      ExtractedOrganizationIdentifier `json:"identifier" mex:"required"`
	StableTargetID  MergedOrganizationIdentifier    `json:"stableTargetId" mex:"required"`
}

// ExtractedVariableGroup groups the variables of a resource.
type ExtractedVariableGroup struct {
	ExtractedData

	ContainedBy    []MergedResourceIdentifier       `json:"containedBy" mex:"required"`
	Label          []Text                           `json:"label" mex:"required"`
	Identifier     ExtractedVariableGroupIdentifier `json:"identifier" mex:"required"`
	StableTargetID MergedVariableGroupIdentifier    `json:"stableTargetId" mex:"required"`
}
