// Roteiro de triagem para febre em farmácia comunitária.
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
	idadeMeses := atoi(prompt("Idade em meses (ex.: 30 anos = 360):"))
	gestante := askBool("Gestante?")
	temperatura := atof(prompt("Temperatura medida (°C):"))
	dur := atoi(prompt("Duração da febre (dias):"))

	rigidezNuca := askBool("Rigidez de nuca (dificuldade de encostar o queixo no peito)?")
	manchasPele := askBool("Manchas vermelhas ou arroxeadas na pele?")
	convulsao := askBool("Convulsão durante o episódio febril?")
	confusao := askBool("Sonolência excessiva, prostração ou confusão mental?")
	dispneia := askBool("Dificuldade para respirar?")
	vomitos := askBool("Vômitos persistentes?")
	desidratacao := askBool("Recusa de líquidos ou sinais de desidratação?")
	dorOuvido := askBool("Dor de ouvido?")
	dorUrinar := askBool("Dor ou ardência ao urinar?")
	doencaCronica := askBool("Doença crônica (cardíaca, pulmonar, renal ou diabetes)?")
	imunossuprimido := askBool("Imunossupressão (quimioterapia, corticoide, HIV)?")
	febreRetornou := askBool("A febre retornou após 48 horas de melhora?")
	calafrios := askBool("Calafrios intensos?")
	falhaAntitermico := askBool("Falha de antitérmico em dose adequada?")

	encaminhar := idadeMeses < 2 || temperatura >= 39.5 || dur > 3 ||
		rigidezNuca || manchasPele || convulsao || confusao || dispneia ||
		vomitos || desidratacao || imunossuprimido || gestante || febreRetornou

	acompanhar := dorOuvido || dorUrinar || doencaCronica || calafrios || falhaAntitermico

	fmt.Printf("Febre de %.1f°C há %d dia(s).\n", temperatura, dur)
	switch {
	case encaminhar:
		fmt.Println("Sinais de alerta presentes: encaminhar para avaliação médica.")
	case acompanhar:
		fmt.Println("Antitérmico e reavaliação em 24-48h.")
	default:
		fmt.Println("Quadro leve: antitérmico, hidratação e repouso.")
	}
}

func main() {
	runCLI()
}
