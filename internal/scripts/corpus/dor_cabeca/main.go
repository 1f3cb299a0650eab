// Roteiro de triagem para dor de cabeça em farmácia comunitária.
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

	dur := atoi(prompt("Duração da dor (dias):"))
	freqMes := atoi(prompt("Frequência: quantas crises por mês?"))
	incapacita := askBool("A dor incapacita atividades diárias?")
	piorDor := askBool("É a pior dor de cabeça da vida?")
	inicioSubito := askBool("Início súbito e explosivo (em segundos)?")
	rigidezNuca := askBool("Rigidez de nuca associada?")
	febre := askBool("Febre associada?")
	alteracaoVisual := askBool("Alteração visual (visão dupla, perda de visão)?")
	fraqueza := askBool("Fraqueza ou dormência em um lado do corpo?")
	confusao := askBool("Confusão mental ou dificuldade para falar?")
	vomitosJato := askBool("Vômitos em jato?")
	aposTrauma := askBool("A dor surgiu após trauma na cabeça?")
	pioraEsforco := askBool("Piora com esforço físico, tosse ou ao deitar?")
	hipertensao := askBool("Hipertensão arterial diagnosticada?")
	enxaqueca := askBool("Diagnóstico prévio de enxaqueca?")
	usoFrequente := askBool("Uso de analgésico mais de 10 dias por mês?")
	falhaOTC := askBool("Falha de analgésico comum em dose adequada?")

	encaminhar := piorDor || inicioSubito || rigidezNuca && febre ||
		alteracaoVisual || fraqueza || confusao || vomitosJato || aposTrauma ||
		pioraEsforco || dur > 15 || freqMes > 10 || idade > 50 && dur > 7 ||
		gestLac || idosoFragil

	acompanhar := incapacita || hipertensao || enxaqueca || usoFrequente ||
		falhaOTC || febre

	fmt.Printf("Dor de cabeça há %d dia(s), %d crise(s)/mês.\n", dur, freqMes)
	switch {
	case encaminhar:
		fmt.Println("Sinais de alerta presentes: encaminhar para avaliação médica.")
	case acompanhar:
		fmt.Println("Analgésico simples e reavaliação em 48-72h.")
	default:
		fmt.Println("Quadro leve: analgésico simples, hidratação e repouso.")
	}
}

func main() {
	runCLI()
}
