package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

const (
	storeRedis  = "redis"
	storeSQLite = "sqlite"
)

type Config struct {
	baseReward    int
	classic       bool
	language      string
	questionsDir  string
	redisAddr     string
	redisDB       int
	redisPassword string
	seed          int64
	sqlitePath    string
	store         string
	verbose       bool
	version       bool
	winThreshold  int
}

func (c *Config) validate() error {
	if c.questionsDir == "" {
		return errors.New("--questions must point at a directory of question files")
	}
	switch c.store {
	case storeRedis:
		if c.redisAddr == "" {
			return errors.New("--redis-addr is required with --store=redis")
		}
	case storeSQLite:
		if c.sqlitePath == "" {
			return errors.New("--sqlite-path is required with --store=sqlite")
		}
	default:
		return fmt.Errorf("invalid store (must be %s or %s): %s", storeRedis, storeSQLite, c.store)
	}
	if c.baseReward < 0 {
		return fmt.Errorf("invalid base reward (must not be negative): %d", c.baseReward)
	}
	if c.winThreshold < 1 {
		return fmt.Errorf("invalid win threshold (must be at least 1): %d", c.winThreshold)
	}
	if _, err := language.Parse(c.language); err != nil {
		return fmt.Errorf("invalid language %q: %w", c.language, err)
	}
	return nil
}

func (c *Config) languageTag() language.Tag {
	tag, err := language.Parse(c.language)
	if err != nil {
		return language.Swedish
	}
	return tag
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("WANNABET")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "wannabet",
		Short:         "A pass-and-play trivia game where the table bets on each other's answers.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return Play(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.IntVar(&cfg.baseReward, "base-reward", 2, "coins paid for a correct answer (env: WANNABET_BASE_REWARD)")
	fs.BoolVarP(&cfg.classic, "classic", "c", false, "default to classic mode without age and year filtering (env: WANNABET_CLASSIC)")
	fs.StringVarP(&cfg.language, "language", "l", "sv", "language used to order remembered player names (env: WANNABET_LANGUAGE)")
	fs.StringVarP(&cfg.questionsDir, "questions", "q", "questions", "directory of question files (env: WANNABET_QUESTIONS)")
	fs.StringVar(&cfg.redisAddr, "redis-addr", "localhost:6379", "redis address (env: WANNABET_REDIS_ADDR)")
	fs.IntVar(&cfg.redisDB, "redis-db", 0, "redis database number (env: WANNABET_REDIS_DB)")
	fs.StringVar(&cfg.redisPassword, "redis-password", "", "redis password (env: WANNABET_REDIS_PASSWORD)")
	fs.Int64Var(&cfg.seed, "seed", 0, "random seed, 0 seeds from the clock (env: WANNABET_SEED)")
	fs.StringVar(&cfg.sqlitePath, "sqlite-path", "wannabet.db", "sqlite database file (env: WANNABET_SQLITE_PATH)")
	fs.StringVarP(&cfg.store, "store", "s", storeSQLite, "where saved games live: sqlite or redis (env: WANNABET_STORE)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display debug logging (env: WANNABET_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: WANNABET_VERSION)")
	fs.IntVarP(&cfg.winThreshold, "win-threshold", "w", 10, "coin balance that wins the game (env: WANNABET_WIN_THRESHOLD)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("wannabet v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
