package models

// AssetRecord represents a single catalogued asset: its street address and its
// precise geographic coordinates. Records are immutable once accepted.
type AssetRecord struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CompanyAsset is an asset record tagged with the company identifier that
// owns it, as returned by the read path.
type CompanyAsset struct {
	AssetRecord
	CompanyID string `json:"companyId"`
}

// DeletedAsset is the summary of a removed record returned by the delete path.
type DeletedAsset struct {
	Address   string `json:"address"`
	CompanyID string `json:"companyId"`
}

// UploadSummary reports the outcome of one successful file ingestion.
type UploadSummary struct {
	Message           string        `json:"message"`
	Added             []AssetRecord `json:"assets"`
	DuplicatesSkipped int           `json:"duplicatesSkipped"`
}
