// Roteiro de triagem para diarreia em farmácia comunitária.
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
	imuno := askBool("Imunossuprimido(a)?")

	dur := atoi(prompt("Duração dos sintomas (dias):"))
	evacDia := atoi(prompt("Número de evacuações por dia:"))
	aquosa := askBool("Fezes aquosas?")
	muco := askBool("Muco nas fezes?")
	sangue := askBool("Sangue nas fezes?")
	noturna := askBool("Diarreia noturna?")
	dorAbd := askBool("Dor abdominal forte?")
	tenesmo := askBool("Tenesmo (vontade de evacuar sem eliminação)?")
	vomitos := askBool("Vômitos persistentes?")
	febre := askBool("Febre acima de 38°C?")
	desidratacao := askBool("Sinais de desidratação (sede intensa, boca seca, pouca urina, tontura)?")
	melena := askBool("Fezes pretas como borra de café (melena)?")
	perdaPeso := askBool("Perda de peso?")
	antibiotico := askBool("Uso de antibiótico nos últimos 30 dias?")
	viagemSurto := askBool("Viagem recente ou contato com surto alimentar/hídrico?")
	dii := askBool("Doença inflamatória intestinal?")
	siiRefrataria := askBool("Síndrome do intestino irritável refratária?")
	falhaOTC := askBool("Falha ou reação adversa com medicamento isento de prescrição (SRO, probióticos, loperamida)?")

	encaminhar := sangue || melena || desidratacao || vomitos || febre && dur > 2 ||
		dur > 7 || evacDia > 10 || perdaPeso || noturna || dii || siiRefrataria ||
		idade < 2 || gestLac || idosoFragil || imuno

	acompanhar := aquosa || muco || dorAbd || tenesmo || antibiotico ||
		viagemSurto || falhaOTC

	fmt.Printf("Diarreia há %d dia(s), %d evacuações/dia.\n", dur, evacDia)
	switch {
	case encaminhar:
		fmt.Println("Sinais de alerta presentes: encaminhar para avaliação médica.")
	case acompanhar:
		fmt.Println("Reidratação oral e acompanhamento em 48h.")
	default:
		fmt.Println("Quadro leve: reidratação oral e dieta.")
	}
}

func main() {
	runCLI()
}
