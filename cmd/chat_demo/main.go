package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"wealthlens/internal/intent"
	"wealthlens/internal/modules/portfolio"
	"wealthlens/internal/responders"
	"wealthlens/internal/routing"
)

func main() {
	lang := flag.String("lang", "normal", "response style: normal or genz")
	flag.Parse()

	message := strings.Join(flag.Args(), " ")
	if message == "" {
		message = "analyze my portfolio risk and give me investment advice"
	}

	registry, err := responders.NewRegistry(portfolio.NewService(portfolio.NewStaticSource(), nil))
	if err != nil {
		log.Fatalf("Failed to build responders: %v", err)
	}
	engine := routing.NewEngine(intent.NewClassifier(intent.MustDefaultLexicon()), registry, routing.DefaultConfig())

	fmt.Printf("User: %s\n", message)

	res := engine.Process(context.Background(), routing.Query{Text: message, Language: routing.ParseLanguage(*lang)})

	fmt.Printf("Intent: %s (confidence %.2f)\n", res.Primary, res.Confidence)
	for _, in := range intent.All() {
		fmt.Printf("  %-20s %.3f\n", in, res.Classification.Scores[in])
	}
	fmt.Printf("Responders: %s\n", strings.Join(res.RespondersUsed, ", "))
	if res.Decision.Fallback {
		fmt.Println("Fallback: yes")
	}
	fmt.Printf("\n%s", res.Text)
}
