package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/arjun-sk/cellsym/internal/battery"
	"github.com/arjun-sk/cellsym/internal/builder"
	"github.com/arjun-sk/cellsym/internal/config"
	"github.com/arjun-sk/cellsym/internal/params"
	"github.com/arjun-sk/cellsym/internal/storage"
	"github.com/arjun-sk/cellsym/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	modelName  string
	// Option flags
	particle       string
	surfaceForm    string
	dimensionality int
	convection     string
	thermal        string
	collector      string
	porosity       string
	// Parameter overrides, name=value
	paramOverrides []string
	// Whether build persists the result
	noSave bool
	// Property plot controls
	cMin        float64
	cMax        float64
	temperature float64
	points      int
	// Sweep over the full option matrix instead of the presets
	sweepAll bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cellsym",
		Short: "lithium-ion cell model composition engine",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".cellsym", "data directory")

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "compose a cell model from options",
		RunE:  runBuild,
	}
	addOptionFlags(buildCmd)
	buildCmd.Flags().BoolVar(&noSave, "no-save", false, "skip persisting the build")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "validate an option set without building",
		RunE:  runValidate,
	}
	addOptionFlags(validateCmd)

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "compose a model and browse it interactively",
		RunE:  runInspect,
	}
	addOptionFlags(inspectCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in configurations",
		RunE:  listConfigPresets,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved builds",
		RunE:  listBuilds,
	}

	exportCmd := &cobra.Command{
		Use:   "export [build_id]",
		Short: "export build metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportBuild,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [conductivity|diffusivity]",
		Short: "plot an electrolyte property correlation",
		Args:  cobra.ExactArgs(1),
		RunE:  plotProperty,
	}
	plotCmd.Flags().Float64Var(&cMin, "c-min", 100, "minimum concentration (mol/m^3)")
	plotCmd.Flags().Float64Var(&cMax, "c-max", 3000, "maximum concentration (mol/m^3)")
	plotCmd.Flags().Float64Var(&temperature, "temp", 298.15, "temperature (K)")
	plotCmd.Flags().IntVar(&points, "points", 60, "number of samples")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "build every preset concurrently",
		RunE:  runSweep,
	}
	sweepCmd.Flags().BoolVar(&sweepAll, "all", false, "build every legal option combination instead of the presets")

	rootCmd.AddCommand(buildCmd, validateCmd, inspectCmd, presetsCmd, listCmd, exportCmd, plotCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addOptionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&modelName, "name", "", "model name")
	cmd.Flags().StringVar(&particle, "particle", "", "particle transport (Fickian diffusion|uniform profile)")
	cmd.Flags().StringVar(&surfaceForm, "surface-form", "", "surface form (false|differential|algebraic)")
	cmd.Flags().IntVar(&dimensionality, "dimensionality", -1, "current collector dimensionality (0-2)")
	cmd.Flags().StringVar(&convection, "convection", "", "convection (none|full)")
	cmd.Flags().StringVar(&thermal, "thermal", "", "thermal (isothermal|lumped)")
	cmd.Flags().StringVar(&collector, "collector", "", "current collector (uniform|potential pair)")
	cmd.Flags().StringVar(&porosity, "porosity", "", "porosity (constant|reaction-driven)")
	cmd.Flags().StringArrayVar(&paramOverrides, "param", nil, "parameter override, name=value (repeatable)")
}

// resolveConfig layers preset, config file and flags: flags win over the
// file, the file wins over the preset.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("name") {
		cfg.Name = modelName
	}
	if cmd.Flags().Changed("particle") {
		cfg.Particle = particle
	}
	if cmd.Flags().Changed("surface-form") {
		cfg.SurfaceForm = surfaceForm
	}
	if cmd.Flags().Changed("dimensionality") {
		cfg.Dimensionality = dimensionality
	}
	if cmd.Flags().Changed("convection") {
		cfg.Convection = convection
	}
	if cmd.Flags().Changed("thermal") {
		cfg.Thermal = thermal
	}
	if cmd.Flags().Changed("collector") {
		cfg.CurrentCollector = collector
	}
	if cmd.Flags().Changed("porosity") {
		cfg.Porosity = porosity
	}

	for _, kv := range paramOverrides {
		name, val, err := splitOverride(kv)
		if err != nil {
			return nil, err
		}
		if cfg.ParameterOverrides == nil {
			cfg.ParameterOverrides = make(map[string]float64)
		}
		cfg.ParameterOverrides[name] = val
	}

	return cfg, nil
}

func splitOverride(kv string) (string, float64, error) {
	name, raw, ok := strings.Cut(kv, "=")
	if !ok {
		return "", 0, fmt.Errorf("invalid parameter override %q, want name=value", kv)
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid parameter override %q: %w", kv, err)
	}
	return name, val, nil
}

func resolveParams(cfg *config.Config) (*params.Set, error) {
	p := params.Default()
	for name, val := range cfg.ParameterOverrides {
		if err := p.Set(name, val); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func buildFromConfig(cfg *config.Config) (*battery.Model, error) {
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	p, err := resolveParams(cfg)
	if err != nil {
		return nil, err
	}
	return builder.BuildNamed(cfg.Name, opts, p)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	model, err := buildFromConfig(cfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Print(viz.Summary(model))
	fmt.Printf("\ncomposed in %v\n", elapsed)

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	buildID, err := st.Save(model)
	if err != nil {
		return err
	}
	fmt.Printf("build id: %s\n", buildID)
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	if _, err := resolveParams(cfg); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "particle\t%s\n", opts.Particle)
	fmt.Fprintf(w, "surface form\t%s\n", opts.SurfaceForm)
	fmt.Fprintf(w, "dimensionality\t%d\n", opts.Dimensionality)
	fmt.Fprintf(w, "convection\t%s\n", opts.Convection)
	fmt.Fprintf(w, "thermal\t%s\n", opts.Thermal)
	fmt.Fprintf(w, "current collector\t%s\n", opts.CurrentCollector)
	fmt.Fprintf(w, "porosity\t%s\n", opts.Porosity)
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println("options valid")
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	model, err := buildFromConfig(cfg)
	if err != nil {
		return err
	}
	return viz.RunBrowser(model)
}

func listConfigPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tPARTICLE\tSURFACE FORM\tTHERMAL\tCOLLECTOR")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			name, p.Particle, p.SurfaceForm, p.Thermal, p.CurrentCollector)
	}
	return w.Flush()
}

func listBuilds(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	builds, err := st.List()
	if err != nil {
		return err
	}

	if len(builds) == 0 {
		fmt.Println("no builds found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tPARTICLE\tSURFACE\tTHERMAL\tEQNS\tVARS")
	for _, b := range builds {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%d\t%d\n",
			b.ID,
			b.Name,
			b.Timestamp.Format("2006-01-02 15:04:05"),
			b.Particle,
			b.SurfaceForm,
			b.Thermal,
			b.Equations,
			b.Variables,
		)
	}
	return w.Flush()
}

func exportBuild(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func plotProperty(cmd *cobra.Command, args []string) error {
	var fn params.PropertyFunc
	var caption string
	switch args[0] {
	case "conductivity":
		fn = params.ConductivityLandesfeind2019ECDMC11
		caption = fmt.Sprintf("electrolyte conductivity (S/m) vs concentration, T=%.2fK", temperature)
	case "diffusivity":
		fn = params.DiffusivityLandesfeind2019ECDMC11
		caption = fmt.Sprintf("electrolyte diffusivity (m^2/s) vs concentration, T=%.2fK", temperature)
	default:
		return fmt.Errorf("unknown property: %s (want conductivity or diffusivity)", args[0])
	}

	graph, err := viz.PlotProperty(fn, caption, cMin, cMax, temperature, points)
	if err != nil {
		return err
	}
	fmt.Println(graph)
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	var names []string
	var optionSets []battery.Options

	if sweepAll {
		optionSets = builder.FullMatrix().Sets()
		for _, opts := range optionSets {
			names = append(names, fmt.Sprintf("%s/%s/%dd/%s/%s/%s/%s",
				opts.Particle, opts.SurfaceForm, opts.Dimensionality,
				opts.Convection, opts.Thermal, opts.CurrentCollector, opts.Porosity))
		}
	} else {
		for _, name := range config.ListPresets() {
			opts, err := config.GetPreset(name).Options()
			if err != nil {
				return fmt.Errorf("preset %s: %w", name, err)
			}
			names = append(names, name)
			optionSets = append(optionSets, opts)
		}
	}

	start := time.Now()
	results := builder.BuildAll(context.Background(), optionSets, params.Default())
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tSTATUS\tEQNS\tVARS")
	for i, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t-\t-\n", names[i], r.Err)
			continue
		}
		fmt.Fprintf(w, "%s\tok\t%d\t%d\n",
			names[i], len(r.Model.EquationNames()), len(r.Model.VariableNames()))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d builds in %v\n", len(results), elapsed)
	return nil
}
