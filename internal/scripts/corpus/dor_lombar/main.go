// Roteiro de triagem para dor lombar em farmácia comunitária.
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

func atof(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func runCLI() {
	idade := atoi(prompt("Idade (anos):"))
	gestLac := askBool("Gestante ou lactante?")
	idosoFragil := askBool("Idoso frágil (dependência/alta vulnerabilidade)?")

	durSemanas := atof(prompt("Duração da dor (semanas):"))
	freqMes := atoi(prompt("Recorrência: quantas vezes por mês?"))
	posturual := askBool("A dor parece relacionada à postura ou atividade física?")
	incapacita := askBool("A dor é intensa a ponto de atrapalhar atividades diárias?")
	trauma := askBool("A dor surgiu após trauma ou acidente?")
	locomocao := askBool("Há dificuldade para andar ou o paciente está acamado?")
	irradiaJoelho := askBool("A dor irradia para além do joelho?")
	deficitProgressivo := askBool("Déficit motor ou sensitivo progressivo?")
	fraquezaPernas := askBool("Fraqueza nas pernas?")
	dificuldadeUrinar := askBool("Dificuldade para urinar?")
	incontinenciaFecal := askBool("Incontinência fecal?")
	neuroGeneralizado := askBool("Sintomas neurológicos generalizados (instabilidade da marcha, quedas, dormência)?")
	perdaPeso := askBool("Perda de peso involuntária?")
	febreCalafrios := askBool("Mal-estar, febre ou calafrios?")
	ituRecente := askBool("Infecção urinária ou bacteremia recente?")
	osteoporose := askBool("Osteoporose?")
	neoplasia := askBool("Neoplasia conhecida?")
	traumasPrevios := askBool("Traumas prévios relevantes?")
	artriteReumatoide := askBool("Artrite reumatoide?")
	imunossupressao := askBool("Imunossupressão?")
	procedimentoEspinhal := askBool("Procedimentos peridurais ou espinhais prévios?")
	corticoide := askBool("Uso prolongado de corticosteroides?")
	falhaTratamento := askBool("Falha terapêutica prévia ou reação adversa importante a tratamento?")

	encaminhar := trauma || locomocao || irradiaJoelho || deficitProgressivo ||
		fraquezaPernas || dificuldadeUrinar || incontinenciaFecal ||
		neuroGeneralizado || perdaPeso || febreCalafrios || ituRecente ||
		osteoporose || neoplasia || imunossupressao || procedimentoEspinhal ||
		durSemanas > 4 || idade > 55 && traumasPrevios ||
		gestLac || idosoFragil

	acompanhar := posturual || incapacita || freqMes > 2 || artriteReumatoide ||
		corticoide || falhaTratamento

	fmt.Printf("Dor lombar há %.0f semana(s).\n", durSemanas)
	switch {
	case encaminhar:
		fmt.Println("Sinais de alerta presentes: encaminhar para avaliação médica.")
	case acompanhar:
		fmt.Println("Analgésico simples, calor local e reavaliação em uma semana.")
	default:
		fmt.Println("Quadro leve: orientação postural e analgésico simples.")
	}
}

func main() {
	runCLI()
}
