package snapshots

import "path/filepath"

// Kind names one input collection.
type Kind string

const (
	KindMVP          Kind = "mvp"
	KindChampionship Kind = "champ"
	KindScoring      Kind = "scoring"
	KindBench        Kind = "bench"
	KindTradeImpact  Kind = "trade_impact"
)

// RequiredKinds must all load for a snapshot to be accepted.
var RequiredKinds = []Kind{KindMVP, KindChampionship, KindScoring, KindBench}

// DataPath builds the path to a collection file, e.g. {basePath}/mvp_data.json.
func DataPath(basePath string, kind Kind) string {
	return filepath.Join(basePath, string(kind)+"_data.json")
}
