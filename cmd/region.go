package cmd

import (
	"errors"
	"fmt"
	"os"

	"foodjourney/internal/core/application/usecases/commands"
	"foodjourney/internal/core/domain/model/entity"
	"foodjourney/internal/core/domain/model/kernel"
	"foodjourney/internal/pkg/errs"

	"github.com/goccy/go-json"
)

const defaultZoom = 12

// Region is the area the registry is seeded in at startup.
type Region struct {
	Name          string
	Center        kernel.Location
	SpawnRadiusKm float64
	Zoom          int
	Seeds         []commands.Seed
}

// DefaultRegion is Ahmedabad with the demo seed names.
func DefaultRegion() Region {
	return Region{
		Name:          "Ahmedabad",
		Center:        kernel.MustNewLocation(23.0225, 72.5714),
		SpawnRadiusKm: 5,
		Zoom:          defaultZoom,
		Seeds: []commands.Seed{
			{Role: entity.FoodDonor, Names: []string{
				"Community Kitchen", "Anand Hotel", "Rajus Dhabha", "Punjabi Rasoi", "Gupta Bhojanalay",
			}},
			{Role: entity.DeliveryLocation, Names: []string{
				"Vasna Slum", "Gota Shelter", "Prerna Orphanage", "Jeevan Jyoti Old Age Home", "Nava Vadaj Colony",
			}},
			{Role: entity.Ngo, Names: []string{
				"Seva Food Bank", "Anna Dan NGO", "Khushiyon Ka Langar", "Annapurna Trust",
			}},
			{Role: entity.Volunteer, Names: []string{
				"Vivek Sharma", "Priya Patel", "Amit Joshi", "Rohit Verma", "Neha Nair",
			}},
			{Role: entity.Host, Names: []string{
				"Sarvodaya Community Center", "Amul School Host", "Sankalp Bhavan",
			}},
			{Role: entity.Picker, Names: []string{
				"Deepak Singh", "Mohammed Rafi", "Sanjay Kumar", "Ramesh Solanki", "Arjun Yadav",
			}},
		},
	}
}

type regionFile struct {
	Name   string `json:"name"`
	Center struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	} `json:"center"`
	SpawnRadiusKm float64          `json:"spawnRadiusKm"`
	Zoom          int              `json:"zoom"`
	Seeds         []regionFileSeed `json:"seeds"`
}

type regionFileSeed struct {
	Role  string   `json:"role"`
	Names []string `json:"names"`
}

// LoadRegion reads a region file. An empty path selects DefaultRegion.
//
// Example file:
//
//	{
//	  "name": "Surat",
//	  "center": {"latitude": 21.1702, "longitude": 72.8311},
//	  "spawnRadiusKm": 4,
//	  "seeds": [{"role": "FoodDonor", "names": ["Surti Rasoi"]}]
//	}
func LoadRegion(path string) (Region, error) {
	if path == "" {
		return DefaultRegion(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Region{}, fmt.Errorf("read region file: %w", err)
	}
	return ParseRegion(data)
}

// ParseRegion decodes a region document. Zoom defaults to 12; roles accept
// either the wire code or the display label.
func ParseRegion(data []byte) (Region, error) {
	var file regionFile
	if err := json.Unmarshal(data, &file); err != nil {
		return Region{}, errs.NewValueIsInvalidErrorWithCause("region", err)
	}

	if file.Center.Latitude == nil || file.Center.Longitude == nil {
		return Region{}, errs.NewValueIsRequiredError("center")
	}
	center, err := kernel.NewLocation(*file.Center.Latitude, *file.Center.Longitude)
	if err != nil {
		return Region{}, err
	}

	region := Region{
		Name:          file.Name,
		Center:        center,
		SpawnRadiusKm: file.SpawnRadiusKm,
		Zoom:          file.Zoom,
	}
	if region.Zoom == 0 {
		region.Zoom = defaultZoom
	}

	var seedErrs []error
	for _, seed := range file.Seeds {
		role, err := entity.ParseRole(seed.Role)
		if err != nil {
			seedErrs = append(seedErrs, err)
			continue
		}
		region.Seeds = append(region.Seeds, commands.Seed{Role: role, Names: seed.Names})
	}
	if err := errors.Join(seedErrs...); err != nil {
		return Region{}, err
	}

	if _, err := region.PopulateCommand(); err != nil {
		return Region{}, err
	}
	return region, nil
}

// PopulateCommand builds the command that seeds the registry with this region's names.
func (r Region) PopulateCommand() (commands.PopulateRegionCommand, error) {
	return commands.NewPopulateRegionCommand(r.Center, r.SpawnRadiusKm, r.Seeds)
}
