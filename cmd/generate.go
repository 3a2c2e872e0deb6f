package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/yskmt/cantus/constants"
	"github.com/yskmt/cantus/db"
	"github.com/yskmt/cantus/export"
	"github.com/yskmt/cantus/generator"
	"github.com/yskmt/cantus/model"
	"github.com/yskmt/cantus/scheduler"
	"github.com/yskmt/cantus/song"
)

var (
	genSeed     int64
	genParadigm string
	genBars     uint32
	genKey      uint8
	genTempo    float64
	genOut      string
)

func init() {
	generateCmd.Flags().Int64Var(&genSeed, "seed", 1, "generation seed")
	generateCmd.Flags().StringVar(&genParadigm, "paradigm", "vocal-lead", "composition paradigm (vocal-lead, motif-lead)")
	generateCmd.Flags().Uint32Var(&genBars, "bars", 16, "song length in bars")
	generateCmd.Flags().Uint8Var(&genKey, "key", 0, "key root pitch class (0=C)")
	generateCmd.Flags().Float64Var(&genTempo, "tempo", 120, "tempo in bpm")
	generateCmd.Flags().StringVar(&genOut, "out", "", "output .mid path (default: <OUT_DIR>/<run id>.mid)")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates a song and writes a MIDI file",
	Long:  `Generates a song and writes a MIDI file`,
	Run: func(cmd *cobra.Command, args []string) {
		Generate()
	},
}

func Generate() {
	paradigm, err := scheduler.ParseParadigm(genParadigm)
	if err != nil {
		panic("Could not generate because: " + err.Error())
	}

	runId := uuid.New().String()
	out := genOut
	if out == "" {
		os.MkdirAll(constants.GetOutDir(), 0777)
		out = filepath.Join(constants.GetOutDir(), runId+".mid")
	}

	fmt.Printf("Generating %v bars (%v, seed %v)\n", genBars, paradigm, genSeed)
	s := generator.BuildSong(song.Params{
		Seed:     genSeed,
		Paradigm: paradigm,
		Bars:     genBars,
		Key:      genKey,
		Tempo:    genTempo,
	})

	for _, w := range s.Warnings {
		fmt.Printf("warning: %v\n", w)
	}

	if err := export.WriteFile(s, out); err != nil {
		panic("Could not write midi file because: " + err.Error())
	}
	fmt.Printf("Wrote %v notes to %v\n", s.Registry.NumNotes(), out)

	if db.Enabled() {
		db.PutRunMetadata(model.RunMetadata{
			RunId:       runId,
			Seed:        genSeed,
			Paradigm:    paradigm.String(),
			Bars:        genBars,
			NumNotes:    uint(s.Registry.NumNotes()),
			NumWarnings: uint(len(s.Warnings)),
		})
		fmt.Printf("Stored run metadata for %v\n", runId)
	}
}
