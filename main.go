package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"skillrank/rating"
	"skillrank/simulation"
)

type config struct {
	matches         int
	seed            uint64
	drawProbability float64
	tau             float64
	trust           float64
	outDir          string
}

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()

	env, err := rating.NewEnv(
		rating.WithDrawProbability(cfg.drawProbability),
		rating.WithTau(cfg.tau),
		rating.WithTrust(cfg.trust),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid rating configuration")
	}

	league := simulation.NewLeague(env, cfg.seed)
	league.AddCompetitor("Alice", 30.0)
	league.AddCompetitor("Bob", 25.0)
	league.AddCompetitor("Clara", 20.0)

	matchRecords, historyRecords, err := league.Run(cfg.matches)
	if err != nil {
		log.Fatal().Err(err).Msg("league run failed")
	}

	writer, err := simulation.NewWriter(cfg.outDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create results writer")
	}
	if err := writer.WriteMatchRecords(matchRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to write match records")
	}
	if err := writer.WriteHistoryRecords(historyRecords); err != nil {
		log.Fatal().Err(err).Msg("failed to write history records")
	}
	standings := league.Standings()
	if err := writer.WriteStandings(standings); err != nil {
		log.Fatal().Err(err).Msg("failed to write standings")
	}

	log.Info().Msgf("results written to %s", writer.Dir())
	for i, s := range standings {
		log.Info().Msgf("#%d %s: mu=%.3f sigma=%.3f conservative=%.3f (true skill %.1f)",
			i+1, s.Player, s.Mu, s.Sigma, s.Conservative, s.TrueSkill)
	}
}

func loadConfig() config {
	return config{
		matches:         intEnv("MATCHES", 90),
		seed:            uint64(intEnv("SEED", 7)),
		drawProbability: floatEnv("DRAW_PROBABILITY", rating.DefaultDrawProbability),
		tau:             floatEnv("TAU", rating.DefaultTau),
		trust:           floatEnv("TRUST", 0.0),
		outDir:          stringEnv("OUT_DIR", "results"),
	}
}

func stringEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Msgf("ignoring invalid %s=%q", key, v)
		return fallback
	}
	return n
}

func floatEnv(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Warn().Msgf("ignoring invalid %s=%q", key, v)
		return fallback
	}
	return f
}
