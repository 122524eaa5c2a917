package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/gorilla/mux"
	"github.com/jsphweid/lickgen/constants"
	"github.com/jsphweid/lickgen/gen"
	"github.com/jsphweid/lickgen/midifile"
	"github.com/jsphweid/lickgen/model"
	"github.com/jsphweid/lickgen/theory"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the generator over HTTP",
	Long:  `Serves the generator over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

// The editor fires a request per tweak; only the settled sequence is worth
// rendering to the preview file.
var (
	previewDebounce = debounce.New(500 * time.Millisecond)
	previewMu       sync.Mutex
	lastSequence    model.Sequence
)

func writeError(w http.ResponseWriter, msg string, code int) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func applyDefaults(input *model.GenerateRequestBody) {
	if input.Key == "" {
		input.Key = "C"
	}
	if input.Scale == "" {
		input.Scale = "major"
	}
	if input.Tempo == 0 {
		input.Tempo = 120
	}
	if input.LengthBars == 0 {
		input.LengthBars = 2
	}
	if input.OctaveLow == 0 && input.OctaveHigh == 0 {
		input.OctaveLow = 3
		input.OctaveHigh = 5
	}
	if input.Feel == "" {
		input.Feel = model.FeelStraight
	}
}

func HandleGenerate(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, "could not read request body", 400)
		return
	}

	var input model.GenerateRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, "could not parse request body: "+err.Error(), 400)
		return
	}

	applyDefaults(&input)
	if !theory.IsKnownScale(input.Scale) {
		writeError(w, "unknown scale: "+input.Scale, 400)
		return
	}
	if input.Tempo <= 0 {
		writeError(w, "tempo must be positive", 400)
		return
	}
	if input.LengthBars < 0.25 {
		writeError(w, "length_bars must be at least 0.25", 400)
		return
	}

	seq := gen.Generate(input.Algorithm, model.GeneratorConfig{
		Key:        input.Key,
		Scale:      input.Scale,
		Tempo:      input.Tempo,
		LengthBars: input.LengthBars,
		OctaveLow:  input.OctaveLow,
		OctaveHigh: input.OctaveHigh,
		Feel:       input.Feel,
		Seed:       input.Seed,
	})
	schedulePreview(seq)

	json.NewEncoder(w).Encode(seq)
}

func HandleAlgorithms(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(gen.Algorithms())
}

func HandleScales(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(theory.ScaleIDs())
}

func schedulePreview(seq model.Sequence) {
	previewMu.Lock()
	lastSequence = seq
	previewMu.Unlock()
	previewDebounce(renderPreview)
}

func renderPreview() {
	previewMu.Lock()
	seq := lastSequence
	previewMu.Unlock()

	dir := constants.GetOutputDir()
	if err := os.MkdirAll(dir, 0777); err != nil {
		fmt.Println("Could not create output dir: " + err.Error())
		return
	}
	if err := midifile.Write(seq, filepath.Join(dir, constants.PreviewFilename)); err != nil {
		fmt.Println("Could not write preview: " + err.Error())
	}
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/generate", HandleGenerate).Methods("POST")
	router.HandleFunc("/algorithms", HandleAlgorithms).Methods("GET")
	router.HandleFunc("/scales", HandleScales).Methods("GET")

	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":8080", handler))
}
