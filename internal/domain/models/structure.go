package models

// Direction labels the side of a structural event or zone.
type Direction string

const (
	Bullish Direction = "bullish"
	Bearish Direction = "bearish"
)

// SweepSide labels which extreme a liquidity sweep ran.
type SweepSide string

const (
	SweepHigh SweepSide = "high"
	SweepLow  SweepSide = "low"
)

// StructureBreak records the most recent break of structure for a timeframe.
// Level is the swing price that was broken.
type StructureBreak struct {
	Direction Direction `json:"direction"`
	Time      int64     `json:"time"`
	Level     float64   `json:"level"`
}

// CharacterChange records the most recent change of character for a timeframe.
type CharacterChange struct {
	Direction Direction `json:"direction"`
	Time      int64     `json:"time"`
}

// LiquiditySweep records a wick beyond a prior extreme that closed back inside.
type LiquiditySweep struct {
	Direction SweepSide `json:"direction"`
	Level     float64   `json:"level"`
	Time      int64     `json:"time"`
}

// ImbalanceZone is a fair value gap: a three-candle price range no trade
// crossed. Zones are kept in chronological order and never retired once price
// fills them.
type ImbalanceZone struct {
	Direction Direction `json:"direction"`
	Lower     float64   `json:"lower"`
	Upper     float64   `json:"upper"`
	Time      int64     `json:"time"`
}

// OrderBlockZone is the range of the last opposite-direction candle before an
// aggressive reversal through it.
type OrderBlockZone struct {
	Direction Direction `json:"direction"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Time      int64     `json:"time"`
}

// MarkerSide is the suggested trade direction of an entry marker.
type MarkerSide string

const (
	MarkerBuy  MarkerSide = "buy"
	MarkerSell MarkerSide = "sell"
)

// Marker is a chart annotation for a directional entry suggestion. Position,
// Shape, and Color follow the lightweight-charts marker vocabulary so the
// client can render it directly. Markers are produced only for the latest
// candle of a timeframe.
type Marker struct {
	Time     int64      `json:"time"`
	Side     MarkerSide `json:"side"`
	Position string     `json:"position"`
	Shape    string     `json:"shape"`
	Color    string     `json:"color"`
	Text     string     `json:"text"`
}

// Bias is the higher-timeframe directional verdict.
type Bias string

const (
	BiasBullish Bias = "bullish"
	BiasBearish Bias = "bearish"
	BiasNeutral Bias = "neutral"
)

// ExecutionSignal is a lower-timeframe marker that passed the confluence
// filter, tagged with the zone that qualified it.
type ExecutionSignal struct {
	Marker       Marker  `json:"marker"`
	Reason       string  `json:"reason"`
	TriggerPrice float64 `json:"triggerPrice"`
}

// ConfluenceResult combines the higher-timeframe bias with the
// execution-worthy lower-timeframe markers. An empty signal list is a normal
// outcome, not an error.
type ConfluenceResult struct {
	HigherTimeframeBias Bias              `json:"higherTimeframeBias"`
	ExecutionSignals    []ExecutionSignal `json:"executionSignals"`
}

// TimeframeAnalysis holds everything derived from one timeframe's candle
// sequence in a single pass. BOS/CHOCH/Sweep keep only the latest occurrence;
// zone slices accumulate over the scan window.
type TimeframeAnalysis struct {
	Interval      string            `json:"interval"`
	Candles       []Candle          `json:"candles"`
	BOS           *StructureBreak   `json:"bos"`
	CHOCH         *CharacterChange  `json:"choch"`
	Sweep         *LiquiditySweep   `json:"sweep"`
	FairValueGaps []ImbalanceZone   `json:"fairValueGaps"`
	OrderBlocks   []OrderBlockZone  `json:"orderBlocks"`
	Markers       []Marker          `json:"markers"`
}

// AnalysisResult is the aggregate served to the charting client.
type AnalysisResult struct {
	Symbol          string            `json:"symbol"`
	HigherInterval  string            `json:"higherInterval"`
	LowerInterval   string            `json:"lowerInterval"`
	DataSource      string            `json:"dataSource"`
	HigherTimeframe TimeframeAnalysis `json:"higherTimeframeResult"`
	LowerTimeframe  TimeframeAnalysis `json:"lowerTimeframeResult"`
	Confluence      ConfluenceResult  `json:"confluenceResult"`
	GeneratedAt     int64             `json:"generatedAtEpochMillis"`
}
