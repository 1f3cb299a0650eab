// Roteiro de triagem para constipação em farmácia comunitária.
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
	acamado := askBool("Paciente acamado ou com mobilidade reduzida?")
	condicoes := askBool("Doença que predispõe ou agrava constipação (DII, hipotireoidismo, diverticulite)?")

	dur := atoi(prompt("Duração dos sintomas (dias):"))
	recorrente := askBool("Constipação recorrente (um ou mais episódios em 3 meses)?")
	fezesAlteradas := askBool("Fezes finas, muito escuras, claras, com muco abundante ou sangue?")
	dorIntensa := askBool("Dor abdominal intensa?")
	incapacita := askBool("O sintoma incapacita atividades diárias?")
	diarreiaAlternada := askBool("Diarreia alternada com constipação?")
	perdaPesoFebre := askBool("Perda de peso involuntária ou febre?")
	evacIncompleta := askBool("Sensação de evacuação incompleta?")
	fezesDuras := askBool("Fezes duras, pequenas ou secas?")
	plenitude := askBool("Sensação de plenitude gástrica ou dor suportável ao evacuar?")
	medsConstipantes := askBool("Uso de medicamentos que podem causar constipação (opioides, ferro, antiácidos)?")
	laxanteCronico := askBool("Uso crônico de laxantes por automedicação?")
	falhaLaxante := askBool("Falha com uso de laxantes?")

	encaminhar := fezesAlteradas || dorIntensa || diarreiaAlternada ||
		perdaPesoFebre || dur > 14 || laxanteCronico || falhaLaxante ||
		idade <= 6 || gestLac || idosoFragil || acamado || condicoes

	acompanhar := recorrente || incapacita || evacIncompleta || fezesDuras ||
		plenitude || medsConstipantes

	fmt.Printf("Constipação há %d dia(s).\n", dur)
	switch {
	case encaminhar:
		fmt.Println("Sinais de alerta presentes: encaminhar para avaliação médica.")
	case acompanhar:
		fmt.Println("Medidas dietéticas e laxante osmótico com acompanhamento.")
	default:
		fmt.Println("Quadro leve: fibras, hidratação e atividade física.")
	}
}

func main() {
	runCLI()
}
