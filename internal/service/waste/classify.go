package waste

import "strings"

type TreatmentCategory string

const (
	TreatmentRecycling    TreatmentCategory = "recycling"
	TreatmentLandfill     TreatmentCategory = "landfill"
	TreatmentIncineration TreatmentCategory = "incineration"
	TreatmentComposting   TreatmentCategory = "composting"
	TreatmentOther        TreatmentCategory = "other"
)

type keywordRule struct {
	keywords []string
	category string
}

// Rule order is load-bearing: a treatment string matching several
// categories lands in the first one listed here.
var treatmentRules = []keywordRule{
	{[]string{"recicla", "reuso", "reutiliza"}, string(TreatmentRecycling)},
	{[]string{"aterro"}, string(TreatmentLandfill)},
	{[]string{"incinera", "queima"}, string(TreatmentIncineration)},
	{[]string{"compost", "orgânico"}, string(TreatmentComposting)},
}

func classifyByRules(value string, rules []keywordRule, fallback string) string {
	norm := strings.ToLower(value)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(norm, kw) {
				return rule.category
			}
		}
	}
	return fallback
}

// ClassifyTreatment assigns a log to exactly one treatment bucket by
// substring match on final_treatment_type, first match wins.
func ClassifyTreatment(finalTreatmentType string) TreatmentCategory {
	return TreatmentCategory(classifyByRules(finalTreatmentType, treatmentRules, string(TreatmentOther)))
}

// IsHazardous is independent of the treatment bucket: a record can be both
// hazardous and landfilled.
func IsHazardous(wasteClass string) bool {
	norm := strings.ToLower(wasteClass)
	return strings.Contains(norm, "classe i") || strings.Contains(norm, "perigoso")
}

// Reuse destination categories, first match wins on waste_description.
const (
	ReusePackaging             = "packaging"
	ReusePallets               = "pallets"
	ReuseContainers            = "containers"
	ReuseEquipmentParts        = "equipment_parts"
	ReuseConstructionMaterials = "construction_materials"
	ReuseOther                 = "other"
)

var reuseRules = []keywordRule{
	{[]string{"embalagem", "embalagens", "caixa"}, ReusePackaging},
	{[]string{"pallet", "palete"}, ReusePallets},
	{[]string{"tambor", "bombona", "contêiner", "container"}, ReuseContainers},
	{[]string{"peça", "peca", "equipamento", "motor"}, ReuseEquipmentParts},
	{[]string{"entulho", "construção", "construcao", "tijolo", "civil"}, ReuseConstructionMaterials},
}

func ClassifyReuseCategory(wasteDescription string) string {
	return classifyByRules(wasteDescription, reuseRules, ReuseOther)
}

// Material categories for the recycling breakdown, first match wins.
const (
	MaterialPaperCardboard = "paper_cardboard"
	MaterialPlastic        = "plastic"
	MaterialMetal          = "metal"
	MaterialGlass          = "glass"
	MaterialOrganic        = "organic"
	MaterialWood           = "wood"
	MaterialElectronic     = "electronic"
	MaterialTextile        = "textile"
	MaterialOther          = "other"
)

var materialRules = []keywordRule{
	{[]string{"papel", "papelão", "papelao", "cartão", "cartao"}, MaterialPaperCardboard},
	{[]string{"plástico", "plastico", "pet", "pead", "pvc"}, MaterialPlastic},
	{[]string{"metal", "alumínio", "aluminio", "aço", "aco", "ferro", "sucata"}, MaterialMetal},
	{[]string{"vidro"}, MaterialGlass},
	{[]string{"orgânico", "organico", "alimento", "poda"}, MaterialOrganic},
	{[]string{"madeira"}, MaterialWood},
	{[]string{"eletrônico", "eletronico", "pilha", "bateria"}, MaterialElectronic},
	{[]string{"têxtil", "textil", "tecido", "uniforme"}, MaterialTextile},
}

func ClassifyMaterial(wasteDescription string) string {
	return classifyByRules(wasteDescription, materialRules, MaterialOther)
}
