package normalize

import "github.com/ciraganenicole/choir-registry/pkg/db"

// leadSingerSource is one extraction strategy for the lead-singer field.
// Historical data spells the concept five different ways; extraction probes
// the spellings in a fixed priority order and the first non-empty source
// wins. Later sources are ignored even when populated, so the order of
// LeadSingerStrategies is load-bearing for backward-compatible reads.
type leadSingerSource struct {
	Name string
	// Extract returns resolved ids and, when the source carries them,
	// display names index-aligned with the ids.
	Extract func(d *db.SongDetail) (ids []int, names []string)
}

// LeadSingerStrategies is the probe chain, highest priority first.
var LeadSingerStrategies = []leadSingerSource{
	{
		Name: "leadSingerIds",
		Extract: func(d *db.SongDetail) ([]int, []string) {
			return d.LeadSingerIDs, nil
		},
	},
	{
		Name: "leadSingers",
		Extract: func(d *db.SongDetail) ([]int, []string) {
			if len(d.LeadSingers) == 0 {
				return nil, nil
			}
			ids := make([]int, len(d.LeadSingers))
			names := make([]string, len(d.LeadSingers))
			for i, ref := range d.LeadSingers {
				ids[i] = ref.ID
				names[i] = ref.Name
			}
			return ids, names
		},
	},
	{
		Name: "leadSinger",
		Extract: func(d *db.SongDetail) ([]int, []string) {
			if d.LeadSinger == nil {
				return nil, nil
			}
			return []int{d.LeadSinger.ID}, []string{d.LeadSinger.Name}
		},
	},
	{
		Name: "leadSingerId",
		Extract: func(d *db.SongDetail) ([]int, []string) {
			if d.LeadSingerID == 0 {
				return nil, nil
			}
			return []int{d.LeadSingerID}, nil
		},
	},
	{
		Name: "vocalLeadIds",
		Extract: func(d *db.SongDetail) ([]int, []string) {
			return d.VocalLeadIDs, nil
		},
	},
	{
		Name: "soloistIds",
		Extract: func(d *db.SongDetail) ([]int, []string) {
			return d.SoloistIDs, nil
		},
	},
}

// extractLeadSingers runs the probe chain over one detail bundle.
func extractLeadSingers(d *db.SongDetail) (ids []int, names []string) {
	for _, src := range LeadSingerStrategies {
		ids, names = src.Extract(d)
		if len(ids) > 0 {
			return ids, names
		}
	}
	return nil, nil
}
