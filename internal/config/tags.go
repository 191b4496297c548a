package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
)

type parseOptions struct {
	EnvPrefix               string
	EnvIsDisabled           bool
	FlagPrefix              string
	Category                string
	AlreadyHasDefaultValues bool
	RequiredByDefault       bool
}

// Для приложений с yaml конфигом + env
var CommonParseOptions = parseOptions{
	AlreadyHasDefaultValues: true,
	RequiredByDefault:       true,
}

// Для приложений только с env
var DefaultParseOptions = parseOptions{
	RequiredByDefault: true,
}

const (
	tagEnv        = "env"        // часть имени env после префикса. env:"-" - без env
	tagEnvPrefix  = "envprefix"  // перезаписывает префикс env
	tagFlag       = "flag"       // часть имени флага после префикса. flag:"-" - флаг скрыт из help
	tagFlagPrefix = "flagprefix" // перезаписывает префикс флага
	tagCLI        = "cli"        // hidden,required,optional. cli:"-" - игнор поля
	tagUsage      = "usage"
	tagDefault    = "default"
	tagCategory   = "category" // категория в help, только для структур
)

var (
	durationType      = reflect.TypeOf(time.Duration(0))
	localDurationType = reflect.TypeOf(duration(0))
	stringSliceType   = reflect.TypeOf([]string(nil))
)

// CommonHelp разбирает env и флаги в cfg и завершает процесс, если был вызван help.
//
//	CommonHelp("app", "usage", "description", &cfg, CommonParseOptions)
func CommonHelp(name, usage, description string, cfg any, opts parseOptions) error {
	helpWasCalled, err := WorkHelp(name, usage, description, cfg, opts)
	if helpWasCalled && err == nil {
		os.Exit(0)
	}

	return err
}

func WorkHelp(name, usage, description string, cfg any, opts parseOptions) (bool, error) {
	flags, err := parseFlags(cfg, opts)
	if err != nil {
		return false, fmt.Errorf("ParseFlags: %w", err)
	}

	var helpWasCalled bool

	original := cli.HelpPrinterCustom
	cli.HelpPrinterCustom = func(w io.Writer, templ string, data any, customFunc map[string]any) {
		helpWasCalled = true

		original(w, templ, data, customFunc)
	}

	defer func() { cli.HelpPrinterCustom = original }()

	cmd := &cli.Command{
		Name:        name,
		Usage:       usage,
		Description: description,
		Flags:       flags,
		Action: func(context.Context, *cli.Command) error {
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		return helpWasCalled, fmt.Errorf("cmd.Run: %w", err)
	}

	return helpWasCalled, nil
}

func parseFlags(c any, opts parseOptions) ([]cli.Flag, error) {
	if c == nil {
		return nil, errors.New("config must not be nil")
	}

	v := reflect.ValueOf(c)
	if v.Kind() != reflect.Ptr {
		return nil, errors.New("config must be pointer")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return nil, errors.New("config must be struct")
	}

	flags := make([]cli.Flag, 0, v.NumField())

	for i := range v.NumField() {
		res, err := parseField(v.Type().Field(i), v.Field(i), opts)
		if err != nil {
			return nil, err
		}

		flags = append(flags, res...)
	}

	return flags, nil
}

// binding - всё, что известно о поле после разбора тегов
type binding struct {
	name       string
	category   string
	env        string
	disableEnv bool
	usage      string
	required   bool
	hidden     bool

	def    string
	hasDef bool
	keep   bool // значение уже пришло из yaml
}

func parseField(f reflect.StructField, v reflect.Value, opts parseOptions) ([]cli.Flag, error) {
	cliOpts, _ := f.Tag.Lookup(tagCLI)
	if cliOpts == "-" {
		return nil, nil
	}

	if !v.CanSet() {
		return nil, fmt.Errorf("private field: %s", f.Name)
	}

	if p, ok := f.Tag.Lookup(tagFlagPrefix); ok {
		opts.FlagPrefix = p
	}

	if p, ok := f.Tag.Lookup(tagEnvPrefix); ok {
		opts.EnvPrefix = p
	}

	isStruct := v.Kind() == reflect.Struct

	category, hasCategory := f.Tag.Lookup(tagCategory)
	switch {
	case hasCategory && !isStruct:
		return nil, fmt.Errorf("category tag is allowed only for structures")
	case !hasCategory && isStruct:
		category = f.Name
	case !hasCategory:
		category = opts.Category
	}

	options := strings.Split(cliOpts, ",")
	required := slices.Contains(options, "required")
	hidden := slices.Contains(options, "hidden")

	if !slices.Contains(options, "optional") {
		required = required || opts.RequiredByDefault
	}

	if hidden && required {
		return nil, fmt.Errorf("flag %v: must not be hidden and required at the same time, add \"optional\" to cli tag", f.Name)
	}

	flagPart, hasFlag := f.Tag.Lookup(tagFlag)
	envPart, hasEnv := f.Tag.Lookup(tagEnv)

	if isStruct {
		if !hasEnv {
			envPart = toScreamingSnakeCase(f.Name)
		}

		if !hasFlag {
			flagPart = toKebabCase(f.Name)
		}

		return parseFlags(v.Addr().Interface(), parseOptions{
			Category:                category,
			EnvPrefix:               join(opts.EnvPrefix, envPart, "_"),
			EnvIsDisabled:           opts.EnvIsDisabled || envPart == "-",
			FlagPrefix:              join(opts.FlagPrefix, flagPart, "-"),
			RequiredByDefault:       required,
			AlreadyHasDefaultValues: opts.AlreadyHasDefaultValues,
		})
	}

	b := binding{
		category:   category,
		usage:      f.Tag.Get(tagUsage),
		required:   required,
		hidden:     hidden,
		disableEnv: opts.EnvIsDisabled || envPart == "-",
	}

	switch {
	case !hasFlag:
		b.name = join(opts.FlagPrefix, toKebabCase(f.Name), "-")
	case flagPart == "-":
		b.name = join(opts.FlagPrefix, toKebabCase(f.Name), "-")
		b.hidden = true
	default:
		b.name = join(opts.FlagPrefix, flagPart, "-")
	}

	if !hasEnv {
		envPart = toScreamingSnakeCase(f.Name)
	}

	b.env = join(opts.EnvPrefix, envPart, "_")

	if opts.AlreadyHasDefaultValues {
		b.keep = !v.IsZero() || v.Kind() == reflect.Bool || !required
	} else {
		b.def, b.hasDef = f.Tag.Lookup(tagDefault)
	}

	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	flag, err := b.flag(v.Addr())
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", f.Name, err)
	}

	return []cli.Flag{flag}, nil
}

// flag создаёт флаг под базовый тип поля. Для "type T1 T2" указатель приводится к *T2.
func (b binding) flag(addr reflect.Value) (cli.Flag, error) {
	t := addr.Type().Elem()

	switch {
	case t == durationType || t == localDurationType:
		dst := convert[time.Duration](addr)
		return fill(&cli.DurationFlag{}, b, dst, time.ParseDuration)
	case t.Kind() == reflect.Slice && t.ConvertibleTo(stringSliceType):
		dst := convert[[]string](addr)
		return fill(&cli.StringSliceFlag{}, b, dst, func(s string) ([]string, error) {
			return strings.Split(s, ","), nil
		})
	}

	switch t.Kind() {
	case reflect.String:
		return fill(&cli.StringFlag{}, b, convert[string](addr), func(s string) (string, error) { return s, nil })
	case reflect.Bool:
		fl, err := fill(&cli.BoolFlag{}, b, convert[bool](addr), strconv.ParseBool)
		if err == nil {
			fl.Required = false
		}

		return fl, err
	case reflect.Int:
		return fill(&cli.IntFlag{}, b, convert[int](addr), strconv.Atoi)
	case reflect.Int64:
		return fill(&cli.Int64Flag{}, b, convert[int64](addr), func(s string) (int64, error) {
			return strconv.ParseInt(s, 10, 64)
		})
	case reflect.Uint:
		return fill(&cli.UintFlag{}, b, convert[uint](addr), func(s string) (uint, error) {
			n, err := strconv.ParseUint(s, 10, 0)
			return uint(n), err
		})
	case reflect.Uint16:
		return fill(&cli.Uint16Flag{}, b, convert[uint16](addr), func(s string) (uint16, error) {
			n, err := strconv.ParseUint(s, 10, 16)
			return uint16(n), err
		})
	case reflect.Float64:
		return fill(&cli.FloatFlag{}, b, convert[float64](addr), func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		})
	default:
		return nil, fmt.Errorf("type %v is unsupported", t)
	}
}

func convert[T any](addr reflect.Value) *T {
	return addr.Convert(reflect.TypeOf((*T)(nil))).Interface().(*T)
}

func fill[T any, C any, VC cli.ValueCreator[T, C]](
	fl *cli.FlagBase[T, C, VC],
	b binding,
	dst *T,
	parse func(string) (T, error),
) (*cli.FlagBase[T, C, VC], error) {
	fl.Name = b.name
	fl.Category = b.category
	fl.Usage = b.usage
	fl.Hidden = b.hidden
	fl.Required = b.required
	fl.Destination = dst

	if !b.disableEnv {
		fl.Sources = cli.EnvVars(b.env)
	}

	switch {
	case b.keep:
		fl.Value = *dst
		fl.Required = false
	case b.hasDef:
		v, err := parse(b.def)
		if err != nil {
			return nil, fmt.Errorf("invalid default %q: %w", b.def, err)
		}

		fl.Value = v
		fl.Required = false
	}

	return fl, nil
}

func join(prefix, part, sep string) string {
	switch {
	case prefix == "":
		return part
	case part == "":
		return prefix
	default:
		return prefix + sep + part
	}
}

var (
	matchFirstCap = regexp.MustCompile("(.)([A-Z][a-z]+)")
	matchAllCap   = regexp.MustCompile("([a-z0-9])([A-Z])")
)

func toSnakeCase(str string) string {
	snake := matchFirstCap.ReplaceAllString(str, "${1}_${2}")
	snake = matchAllCap.ReplaceAllString(snake, "${1}_${2}")

	return strings.ToLower(snake)
}

func toKebabCase(str string) string {
	return strings.ReplaceAll(toSnakeCase(str), "_", "-")
}

func toScreamingSnakeCase(str string) string {
	return strings.ToUpper(toSnakeCase(str))
}
