package aws

// Region is a suggested AWS region with a human readable name.
type Region struct {
	Code string
	Name string
}

// Regions is the ordered list of regions offered as suggestions by the region
// prompt. Regions missing from this list are still accepted when typed.
var Regions = []Region{
	{"eu-north-1", "Europe (Stockholm)"},
	{"ap-south-1", "Asia Pacific (Mumbai)"},
	{"eu-west-3", "Europe (Paris)"},
	{"eu-west-2", "Europe (London)"},
	{"eu-west-1", "Europe (Ireland)"},
	{"ap-northeast-2", "Asia Pacific (Seoul)"},
	{"ap-northeast-1", "Asia Pacific (Tokyo)"},
	{"sa-east-1", "South America (São Paulo)"},
	{"ca-central-1", "Canada (Central)"},
	{"ap-southeast-1", "Asia Pacific (Singapore)"},
	{"ap-southeast-2", "Asia Pacific (Sydney)"},
	{"eu-central-1", "Europe (Frankfurt)"},
	{"us-east-1", "US East (N. Virginia)"},
	{"us-east-2", "US East (Ohio)"},
	{"us-west-1", "US West (N. California)"},
	{"us-west-2", "US West (Oregon)"},
}

// IsKnownRegion checks if the region is part of the suggestion list
func IsKnownRegion(code string) bool {
	for _, r := range Regions {
		if r.Code == code {
			return true
		}
	}
	return false
}

// GetAllRegions returns the region codes in suggestion order
func GetAllRegions() []string {
	regions := make([]string, 0, len(Regions))
	for _, r := range Regions {
		regions = append(regions, r.Code)
	}
	return regions
}
