package domain

// Aggregation results are value objects produced fresh on every call.
// Nothing here is persisted or cached.

type TreatmentBucket struct {
	Tonnes     float64 `json:"tonnes"`
	Percentage float64 `json:"percentage"`
}

type TreatmentBreakdown struct {
	Recycling    TreatmentBucket `json:"recycling"`
	Landfill     TreatmentBucket `json:"landfill"`
	Incineration TreatmentBucket `json:"incineration"`
	Composting   TreatmentBucket `json:"composting"`
	Other        TreatmentBucket `json:"other"`
}

// YearComparison is present only when the prior year resolved with data.
type YearComparison struct {
	PreviousYear     Year    `json:"previous_year"`
	PreviousValue    float64 `json:"previous_value"`
	ChangeAbsolute   float64 `json:"change_absolute"`
	ChangePercentage float64 `json:"change_percentage"`
	Improving        bool    `json:"improving"`
}

type GenerationResult struct {
	Year                 Year               `json:"year"`
	TotalGeneratedTonnes float64            `json:"total_generated_tonnes"`
	HazardousTonnes      float64            `json:"hazardous_tonnes"`
	NonHazardousTonnes   float64            `json:"non_hazardous_tonnes"`
	HazardousPercentage  float64            `json:"hazardous_percentage"`
	ByTreatment          TreatmentBreakdown `json:"by_treatment"`
	RecordCount          int                `json:"record_count"`
	Comparison           *YearComparison    `json:"comparison,omitempty"`
}

type ZeroWasteCompliance struct {
	TargetPercentage float64 `json:"target_percentage"`
	GapToTarget      float64 `json:"gap_to_target"`
	IsCompliant      bool    `json:"is_compliant"`
}

type WasteTypeDisposal struct {
	WasteDescription   string  `json:"waste_description"`
	LandfillTonnes     float64 `json:"landfill_tonnes"`
	IncinerationTonnes float64 `json:"incineration_tonnes"`
	TotalTonnes        float64 `json:"total_tonnes"`
	Hazardous          bool    `json:"hazardous"`
}

type EnvironmentalImpact struct {
	LandfillCO2Kg     float64 `json:"landfill_co2_kg"`
	IncinerationCO2Kg float64 `json:"incineration_co2_kg"`
	TotalCO2Kg        float64 `json:"total_co2_kg"`
}

type DisposalCostEstimate struct {
	LandfillCostBRL     float64 `json:"landfill_cost_brl"`
	IncinerationCostBRL float64 `json:"incineration_cost_brl"`
	TotalCostBRL        float64 `json:"total_cost_brl"`
}

type DisposalResult struct {
	Year                      Year                 `json:"year"`
	TotalGeneratedTonnes      float64              `json:"total_generated_tonnes"`
	LandfillTonnes            float64              `json:"landfill_tonnes"`
	IncinerationTonnes        float64              `json:"incineration_tonnes"`
	DisposalTonnes            float64              `json:"disposal_tonnes"`
	LandfillPercentage        float64              `json:"landfill_percentage"`
	IncinerationPercentage    float64              `json:"incineration_percentage"`
	DisposalPercentage        float64              `json:"disposal_percentage"`
	PerformanceClassification string               `json:"performance_classification"`
	ZeroWaste                 ZeroWasteCompliance  `json:"zero_waste"`
	TopWasteTypes             []WasteTypeDisposal  `json:"top_waste_types"`
	HazardousDisposalTonnes   float64              `json:"hazardous_disposal_tonnes"`
	EnvironmentalImpact       EnvironmentalImpact  `json:"environmental_impact"`
	CostEstimate              DisposalCostEstimate `json:"cost_estimate"`
	Comparison                *YearComparison      `json:"comparison,omitempty"`
}

type CategoryVolume struct {
	Category   string  `json:"category"`
	Tonnes     float64 `json:"tonnes"`
	Percentage float64 `json:"percentage"`
}

type ReuseResult struct {
	Year                      Year             `json:"year"`
	TotalGeneratedTonnes      float64          `json:"total_generated_tonnes"`
	ReuseTonnes               float64          `json:"reuse_tonnes"`
	ReusePercentage           float64          `json:"reuse_percentage"`
	PerformanceClassification string           `json:"performance_classification"`
	ByCategory                []CategoryVolume `json:"by_category"`
	Comparison                *YearComparison  `json:"comparison,omitempty"`
}

type RecyclingResult struct {
	Year                 Year             `json:"year"`
	TotalGeneratedTonnes float64          `json:"total_generated_tonnes"`
	TotalRecycledTonnes  float64          `json:"total_recycled_tonnes"`
	RecyclingPercentage  float64          `json:"recycling_percentage"`
	ByMaterial           []CategoryVolume `json:"by_material"`
	MaturityLevel        string           `json:"maturity_level"`
	ZeroWasteProgress    float64          `json:"zero_waste_progress"`
}
