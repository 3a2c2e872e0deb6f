package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"github.com/yskmt/cantus/export"
	"github.com/yskmt/cantus/generator"
	"github.com/yskmt/cantus/model"
	"github.com/yskmt/cantus/report"
	"github.com/yskmt/cantus/scheduler"
	"github.com/yskmt/cantus/song"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the generation API",
	Long:  `Serves the generation API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, detail string, code int) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}

func handleGenerate(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, "Could not read request body", 400)
		return
	}

	var input model.GenerateRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, "Could not unmarshal request body: "+err.Error(), 400)
		return
	}
	if input.Paradigm == "" {
		input.Paradigm = "vocal-lead"
	}
	if input.Bars == 0 {
		input.Bars = 16
	}
	paradigm, err := scheduler.ParseParadigm(input.Paradigm)
	if err != nil {
		writeError(w, err.Error(), 400)
		return
	}

	s := generator.BuildSong(song.Params{
		Seed:     input.Seed,
		Paradigm: paradigm,
		Bars:     input.Bars,
	})

	if input.Format == "midi" {
		w.Header().Set("Content-Type", "audio/midi")
		if err := export.Write(s, w); err != nil {
			fmt.Printf("Could not stream midi: %v\n", err)
		}
		return
	}

	rep := report.Analyze(s)
	res := model.GenerateResult{
		RunId:      uuid.New().String(),
		Seed:       input.Seed,
		Paradigm:   paradigm.String(),
		Bars:       input.Bars,
		NumNotes:   rep.NumNotes,
		Warnings:   s.Warnings,
		NumClashes: rep.NumClashes,
	}
	json.NewEncoder(w).Encode(res)
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok"))
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/generate", handleGenerate).Methods("POST")
	router.HandleFunc("/healthz", handleHealthz).Methods("GET")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":8080", handler))
}
