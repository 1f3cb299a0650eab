package recommend

import "github.com/arthur04112006/Pharm-Assist/pkg/textnorm"

// posologyByClass is the adult over-the-counter posology per therapeutic
// class. Keys are normalized class names.
var posologyByClass = map[string]string{
	"antitussigeno":        "1 comprimido a cada 6-8 horas",
	"mucolitico":           "1 comprimido ou 5ml a cada 8 horas",
	"expectorante":         "10ml a cada 8 horas",
	"antialergico":         "1 comprimido ao dia",
	"antitermico":          "1 comprimido a cada 6 horas se febre",
	"analgesico":           "1 comprimido a cada 6 horas se dor",
	"anti inflamatorio":    "1 comprimido a cada 8 horas após as refeições",
	"antidiarreico":        "1 comprimido após cada evacuação líquida, máximo 4 ao dia",
	"probiotico":           "1 sachê ou cápsula 2 vezes ao dia",
	"adsorvente":           "1 sachê diluído em água 3 vezes ao dia",
	"reidratante":          "1 copo após cada evacuação ou vômito",
	"laxante osmotico":     "15ml ou 1 sachê ao dia, preferir à noite",
	"laxante vegetal":      "1 dose ao deitar",
	"laxante lubrificante": "1 supositório quando necessário",
	"relaxante muscular":   "1 comprimido a cada 8 horas",
}

const defaultPosology = "Usar conforme orientação farmacêutica"

// posologyFor returns the synthesized posology for a therapeutic class.
func posologyFor(class string) string {
	if p, ok := posologyByClass[textnorm.Normalize(class)]; ok {
		return p
	}
	return defaultPosology
}
