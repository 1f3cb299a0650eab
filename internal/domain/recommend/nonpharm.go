package recommend

// nonPharmAdvice lists the non-pharmacological measures offered with
// every bundle, per module.
var nonPharmAdvice = map[string][]string{
	"tosse": {
		"Manter boa hidratação (água, chás)",
		"Umidificar o ambiente",
		"Evitar fumaça e poeira",
		"Mel pode ajudar a acalmar a garganta (exceto menores de 1 ano)",
		"Elevar a cabeceira da cama para tosse noturna",
	},
	"febre": {
		"Manter repouso e hidratação abundante",
		"Usar roupas leves",
		"Compressas mornas na testa e axilas",
		"Medir a temperatura a cada 4-6 horas",
	},
	"diarreia": {
		"Aumentar ingestão de líquidos e soro caseiro",
		"Preferir alimentos leves (arroz, batata, banana)",
		"Evitar laticínios, gorduras e açúcar",
		"Higienizar bem as mãos e os alimentos",
	},
	"dor_cabeca": {
		"Repousar em ambiente escuro e silencioso",
		"Manter hidratação e sono regular",
		"Compressa fria na testa pode aliviar",
		"Evitar jejum prolongado e excesso de cafeína",
	},
	"constipacao": {
		"Aumentar ingestão de fibras (frutas, verduras, cereais integrais)",
		"Beber pelo menos 2 litros de água por dia",
		"Praticar atividade física regular",
		"Não adiar a vontade de evacuar",
	},
	"dor_lombar": {
		"Aplicar calor local por 20 minutos",
		"Evitar repouso absoluto prolongado",
		"Corrigir postura ao sentar e ao levantar peso",
		"Alongamentos leves conforme tolerância",
	},
}

// NonPharmacological returns the advice list for a module; empty for
// unknown modules.
func NonPharmacological(module string) []string {
	return nonPharmAdvice[module]
}
