package cmd

import (
	"github.com/spf13/cobra"
	"github.com/yskmt/cantus/generator"
	"github.com/yskmt/cantus/report"
	"github.com/yskmt/cantus/scheduler"
	"github.com/yskmt/cantus/song"
)

func init() {
	reportCmd.Flags().Int64Var(&genSeed, "seed", 1, "generation seed")
	reportCmd.Flags().StringVar(&genParadigm, "paradigm", "vocal-lead", "composition paradigm (vocal-lead, motif-lead)")
	reportCmd.Flags().Uint32Var(&genBars, "bars", 16, "song length in bars")
	reportCmd.Flags().Uint8Var(&genKey, "key", 0, "key root pitch class (0=C)")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Rebuilds a song from its seed and prints a dissonance report",
	Long:  `Rebuilds a song from its seed and prints a dissonance report`,
	Run: func(cmd *cobra.Command, args []string) {
		Report()
	},
}

func Report() {
	paradigm, err := scheduler.ParseParadigm(genParadigm)
	if err != nil {
		panic("Could not report because: " + err.Error())
	}
	s := generator.BuildSong(song.Params{
		Seed:     genSeed,
		Paradigm: paradigm,
		Bars:     genBars,
		Key:      genKey,
	})
	report.Analyze(s).Print()
}
