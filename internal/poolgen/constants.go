package poolgen

import "errors"

// Assumption texts recorded in every generated file
const (
	AssumptionHoloRule          = "variant_details.holo == true, else rarity text contains 'holo'"
	AssumptionIncludeCategories = "all"
	AssumptionDuplicatePolicy   = "allowed_within_pack"
)

// Rarity keywords, matched against case-folded rarity text
const (
	KeywordHolo     = "holo"
	KeywordUncommon = "uncommon"
	KeywordCommon   = "common"
	KeywordRare     = "rare"
)

// File layout
const (
	CardFileExt   = ".json"
	OutputDirPerm = 0o755
	OutputPerm    = 0o644
	JSONIndent    = "  "
)

// Log messages
const (
	LogMsgSetGenerated = "Rarity pool generated"
	LogMsgAnomalies    = "Card metadata anomalies"
)

// Log field keys
const (
	LogFieldSetID        = "set_id"
	LogFieldScanned      = "scanned"
	LogFieldCommon       = "common"
	LogFieldUncommon     = "uncommon"
	LogFieldRare         = "rare"
	LogFieldHolo         = "holo"
	LogFieldAnomalies    = "anomalies"
	LogFieldOutput       = "output"
	LogFieldMissing      = "missing_rarity"
	LogFieldUnclassified = "unclassified_rarity"
	LogFieldParseErrors  = "parse_errors"
)

// Error contexts
const (
	ErrContextReadSetDir = "failed to read set directory"
	ErrContextWritePool  = "failed to write pool file"
	ErrContextVerifyPool = "generated pool does not load"
)

var (
	ErrInputDirNotFound = errors.New("input directory not found or not a directory")
	ErrNoSetFolders     = errors.New("no set folders found")
)
