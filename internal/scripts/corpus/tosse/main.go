// Roteiro de triagem para tosse em farmácia comunitária.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var reader = bufio.NewReader(os.Stdin)

func prompt(q string) string {
	fmt.Print(q + " ")
	s, _ := reader.ReadString('\n')
	return strings.TrimSpace(s)
}

func askBool(q string) bool {
	for {
		switch strings.ToLower(prompt(q + " (s/n):")) {
		case "s", "sim", "y", "yes":
			return true
		case "n", "nao", "não", "no":
			return false
		}
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func runCLI() {
	idade := atoi(prompt("Idade (anos):"))
	gestLac := askBool("Gestante ou lactante?")
	idosoFragil := askBool("Idoso frágil (dependência/alta vulnerabilidade)?")
	acamado := askBool("Paciente acamado?")
	imuno := askBool("Imunocomprometido(a)?")

	dur := atoi(prompt("Duração da tosse (dias):"))
	produtiva := askBool("Tosse produtiva (com catarro)?")
	seca := askBool("Tosse seca?")
	rinite := askBool("Histórico de rinite ou alergia respiratória?")
	noturna := askBool("Tosse predominantemente noturna?")
	incapacita := askBool("A tosse incapacita atividades diárias?")
	purulenta := askBool("Tosse purulenta, com sangue e/ou odor fétido?")
	dorPeito := askBool("Dor no peito ou falta de ar?")
	sibilancia := askBool("Chiado no peito (sibilância)?")
	febre := askBool("Febre?")
	hemoptise := askBool("Eliminação de sangue ao tossir (hemoptise)?")
	rouquidao := askBool("Rouquidão há mais de 3 semanas?")
	anorexia := askBool("Perda de apetite ou de peso?")
	dorGarganta := askBool("Dor de garganta com placas de pus?")
	dorInspirar := askBool("Dor ao inspirar profundamente?")
	sintomasGI := askBool("Sintomas gastrointestinais associados?")
	artralgia := askBool("Dor nas articulações?")
	conjuntivite := askBool("Conjuntivite associada?")
	malEstar := askBool("Mal-estar generalizado?")
	dorFacial := askBool("Dor facial ou pressão nos seios da face?")
	dorEpigastrica := askBool("Dor epigástrica ou queimação?")
	regurgitacao := askBool("Regurgitação ou refluxo frequente?")
	linfonodos := askBool("Gânglios aumentados no pescoço (linfonodomegalia)?")
	visceromegalia := askBool("Fígado ou baço aumentados (hepatoesplenomegalia)?")
	edemaMMII := askBool("Inchaço nas pernas (edema de membros inferiores)?")
	usaIECA := askBool("Uso de medicamento anti-hipertensivo da classe IECA (ex.: captopril, enalapril)?")
	falhaOTC := askBool("Falha de tratamento anterior com medicamento isento de prescrição?")

	encaminhar := purulenta || dorPeito || hemoptise || rouquidao || anorexia ||
		dorGarganta || dorInspirar || linfonodos || visceromegalia || edemaMMII ||
		sibilancia && febre || dur > 21 || idade < 2 ||
		gestLac || idosoFragil || acamado || imuno

	acompanhar := noturna || incapacita || rinite || conjuntivite || malEstar ||
		artralgia || dorFacial || dorEpigastrica || regurgitacao || sintomasGI ||
		usaIECA || falhaOTC || produtiva && dur > 7 || seca && dur > 14

	fmt.Printf("Paciente de %d anos, tosse há %d dias.\n", idade, dur)
	switch {
	case encaminhar:
		fmt.Println("Sinais de alerta presentes: encaminhar para avaliação médica.")
	case acompanhar:
		fmt.Println("Tratamento sintomático com acompanhamento em 48-72h.")
	default:
		fmt.Println("Quadro leve: orientação e tratamento sintomático.")
	}
}

func main() {
	runCLI()
}
