// CLI tool to save the active profile from an interactive prompt and print
// the metrics derived from it. With -hash-password it instead prints a bcrypt
// hash for FITCALC_PASSWORD_HASH.
// Usage: go run ./cmd/create-profile [-hash-password]
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/bcrypt"

	"lg/fitcalc-api/internal/calc"
	"lg/fitcalc-api/internal/profile"
	"lg/fitcalc-api/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}

	app := &cli.App{
		Name:  "create-profile",
		Usage: "save the active fitness profile",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db-url",
				Value:   "fitcalc.db",
				Usage:   "SQLite file path or postgres:// URL",
				EnvVars: []string{"DB_URL"},
			},
			&cli.BoolFlag{
				Name:  "hash-password",
				Usage: "prompt for a password and print its bcrypt hash",
			},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("hash-password") {
				return hashPassword(os.Stdin, os.Stdout)
			}
			return createProfile(c.Context, c.String("db-url"), os.Stdin, os.Stdout)
		},
	}
	if err := app.RunContext(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func hashPassword(in io.Reader, out io.Writer) error {
	fmt.Fprint(out, "Password: ")
	password, _ := bufio.NewReader(in).ReadString('\n')
	password = strings.TrimSpace(password)
	if password == "" {
		return errors.New("password must not be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	fmt.Fprintf(out, "\nFITCALC_PASSWORD_HASH=%s\n", hash)
	return nil
}

func createProfile(ctx context.Context, dbURL string, in io.Reader, out io.Writer) error {
	p, err := promptProfile(in, out)
	if err != nil {
		return err
	}
	if fields := profile.Validate(p); fields != nil {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(out, "  %s: %s\n", k, fields[k])
		}
		return errors.New("profile is invalid")
	}

	backend, err := storage.Open(ctx, dbURL)
	if err != nil {
		return err
	}
	defer backend.Close()

	if err := profile.NewService(backend).Save(ctx, p); err != nil {
		return err
	}

	bmi := calc.ComputeBMI(p)
	fmt.Fprintf(out, "\nProfile saved!\n")
	fmt.Fprintf(out, "  BMR:   %.0f kcal/day\n", calc.BMR(p))
	fmt.Fprintf(out, "  TDEE:  %d kcal/day\n", calc.TDEE(p))
	fmt.Fprintf(out, "  Water: %d ml/day\n", calc.WaterIntake(p))
	fmt.Fprintf(out, "  BMI:   %.1f (%s)\n", bmi.Value, bmi.Category)
	return nil
}

// prompter reads one answer per line, falling back to the shown default on
// an empty line.
type prompter struct {
	r   *bufio.Reader
	out io.Writer
	err error
}

func (p *prompter) ask(label, def string) string {
	if p.err != nil {
		return def
	}
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}
	line, err := p.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		p.err = err
		return def
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

func (p *prompter) askInt(label string, def int) int {
	s := p.ask(label, strconv.Itoa(def))
	n, err := strconv.Atoi(s)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("%s: %q is not a whole number", label, s)
	}
	return n
}

func (p *prompter) askFloat(label string, def float64) float64 {
	s := p.ask(label, strconv.FormatFloat(def, 'f', -1, 64))
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("%s: %q is not a number", label, s)
	}
	return f
}

// promptProfile asks for every field, offering profile.Default() values.
func promptProfile(in io.Reader, out io.Writer) (profile.Profile, error) {
	def := profile.Default()
	pr := &prompter{r: bufio.NewReader(in), out: out}

	p := profile.Profile{
		Name:              pr.ask("Name", def.Name),
		Age:               pr.askInt("Age (years)", def.Age),
		Weight:            pr.askFloat("Weight (kg)", def.Weight),
		Height:            pr.askFloat("Height (cm)", def.Height),
		Gender:            profile.Gender(pr.ask("Gender (male/female/other)", string(def.Gender))),
		ActivityLevel:     profile.ActivityLevel(pr.ask("Activity level (sedentary/light/moderate/active/very-active)", string(def.ActivityLevel))),
		FitnessGoal:       profile.FitnessGoal(pr.ask("Fitness goal (lose-weight/maintain/gain-muscle)", string(def.FitnessGoal))),
		Steps:             pr.askInt("Daily steps", def.Steps),
		PlanDuration:      pr.askInt("Plan duration (days)", def.PlanDuration),
		DietaryPreference: profile.DietaryPreference(pr.ask("Diet (vegetarian/non-vegetarian/vegan/indian)", string(def.DietaryPreference))),
		Allergies:         splitList(pr.ask("Allergies (comma separated)", "")),
		MealCount:         pr.askInt("Meals per day (2-6)", def.MealCount),
	}
	if pr.err != nil {
		return profile.Profile{}, pr.err
	}
	return p, nil
}

func splitList(s string) []string {
	out := []string{}
	for _, item := range strings.Split(s, ",") {
		if item = strings.ToLower(strings.TrimSpace(item)); item != "" {
			out = append(out, item)
		}
	}
	return out
}
