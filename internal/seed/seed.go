package seed

import (
	"fmt"
	"os"

	"asset-catalog-api/internal/models"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Assets []seedAsset `yaml:"assets"`
}

type seedAsset struct {
	CompanyID string  `yaml:"companyId"`
	Address   string  `yaml:"address"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// Load reads sample assets from a YAML file for pre-seeding a fresh store.
func Load(path string) ([]models.CompanyAsset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: failed to read %s: %w", path, err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("seed: failed to parse %s: %w", path, err)
	}

	assets := make([]models.CompanyAsset, 0, len(file.Assets))
	for i, a := range file.Assets {
		if a.CompanyID == "" || a.Address == "" {
			return nil, fmt.Errorf("seed: asset %d is missing companyId or address", i+1)
		}
		if a.Latitude < -90 || a.Latitude > 90 || a.Longitude < -180 || a.Longitude > 180 {
			return nil, fmt.Errorf("seed: asset %d has out-of-range coordinates (%v, %v)", i+1, a.Latitude, a.Longitude)
		}
		assets = append(assets, models.CompanyAsset{
			AssetRecord: models.AssetRecord{
				Address:   a.Address,
				Latitude:  a.Latitude,
				Longitude: a.Longitude,
			},
			CompanyID: a.CompanyID,
		})
	}
	return assets, nil
}
