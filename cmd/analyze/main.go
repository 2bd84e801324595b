// Command analyze runs the matching pipeline once from the command line,
// printing the analysis result as indented JSON. Useful for trying scoring
// changes without standing up the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	app "github.com/resumatch/resumatch/internal/app"
	"github.com/resumatch/resumatch/internal/extract"
	"github.com/resumatch/resumatch/pkg/logger"
)

const defaultTimeout = 60 * time.Second

func main() {
	var (
		resumePath = flag.String("resume", "", "Path to the resume (.txt, .pdf, .docx)")
		jobPath    = flag.String("job", "", "Path to the job description (.txt, .pdf, .docx)")
		strategy   = flag.String("strategy", "frequency-vector", "Similarity strategy: lexical, frequency-vector, semantic")
		apiKey     = flag.String("api-key", os.Getenv("RESUMATCH_EMBEDDING_API_KEY"), "Embedding API key for the semantic strategy")
	)
	flag.Parse()

	if *resumePath == "" || *jobPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	resumeText, err := readDocument(*resumePath)
	if err != nil {
		fail("read resume: " + err.Error())
	}
	jobText, err := readDocument(*jobPath)
	if err != nil {
		fail("read job description: " + err.Error())
	}

	svc := app.New(
		app.WithStrategy(*strategy),
		app.WithEmbedding("", *apiKey),
	)
	if err := svc.Start(ctx); err != nil {
		fail("start service: " + err.Error())
	}
	defer svc.Stop()

	result, err := svc.Analyze(ctx, resumeText, jobText)
	if err != nil {
		fail("analyze: " + err.Error())
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fail("encode result: " + err.Error())
	}
}

func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return extract.Text(path, data)
}

func fail(msg string) {
	os.Stderr.WriteString(msg + "\n")
	os.Exit(1)
}
