package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"omegraph/internal/domain"
	"omegraph/internal/enums"
)

var resolveStrict bool

// vocabulary resolves a term against one canonical label set
type vocabulary struct {
	labels  func() []string
	resolve func(policy enums.Policy, term string) (string, error)
}

func newVocabulary[V ~string](set map[string]V, unknown V) vocabulary {
	return vocabulary{
		labels: func() []string {
			out := make([]string, 0, len(set))
			for label := range set {
				out = append(out, label)
			}
			sort.Strings(out)
			return out
		},
		resolve: func(policy enums.Policy, term string) (string, error) {
			v, err := enums.NewResolver(policy, unknown).Resolve(set, term)
			return string(v), err
		},
	}
}

var vocabularies = map[string]vocabulary{
	"immersion":         newVocabulary(domain.Immersions, domain.ImmersionOther),
	"correction":        newVocabulary(domain.Corrections, domain.CorrectionOther),
	"detector_type":     newVocabulary(domain.DetectorTypes, domain.DetectorOther),
	"filter_type":       newVocabulary(domain.FilterTypes, domain.FilterOther),
	"laser_type":        newVocabulary(domain.LaserTypes, domain.LaserOther),
	"laser_medium":      newVocabulary(domain.LaserMedia, domain.MediumOther),
	"arc_type":          newVocabulary(domain.ArcTypes, domain.ArcOther),
	"filament_type":     newVocabulary(domain.FilamentTypes, domain.FilamentOther),
	"illumination_type": newVocabulary(domain.IlluminationTypes, domain.IlluminationOther),
	"contrast_method":   newVocabulary(domain.ContrastMethods, domain.ContrastOther),
	"acquisition_mode":  newVocabulary(domain.AcquisitionModes, domain.AcquisitionOther),
	"naming_convention": newVocabulary(domain.NamingConventions, domain.NamingOther),
}

func vocabularyNames() []string {
	names := make([]string, 0, len(vocabularies))
	for name := range vocabularies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <vocabulary> [term]",
	Short: "Resolve a free-text term against a controlled vocabulary",
	Long: `Resolve a term the way assertion logs are normalized. With only a
vocabulary name the canonical labels are listed.

Vocabularies:
  ` + strings.Join(vocabularyNames(), "\n  ") + `

Examples:
  omegraph resolve correction "Plan Apo"
  omegraph resolve --strict immersion "Oil immersion"
  omegraph resolve laser_medium`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		vocab, ok := vocabularies[args[0]]
		if !ok {
			return fmt.Errorf("unknown vocabulary %q (have %s)", args[0], strings.Join(vocabularyNames(), ", "))
		}

		out := cmd.OutOrStdout()
		if len(args) == 1 {
			for _, label := range vocab.labels() {
				fmt.Fprintln(out, label)
			}
			return nil
		}

		policy := enums.PolicyFallback
		if resolveStrict {
			policy = enums.PolicyStrict
		} else if cfg, _, err := loadConfig(); err == nil {
			policy = cfg.EnumPolicy()
		}

		label, err := vocab.resolve(policy, args[1])
		if err != nil {
			return fmt.Errorf("%s %q: %w", args[0], args[1], err)
		}
		fmt.Fprintln(out, label)
		return nil
	},
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveStrict, "strict", false, "fail instead of falling back to Other")
	rootCmd.AddCommand(resolveCmd)
}
