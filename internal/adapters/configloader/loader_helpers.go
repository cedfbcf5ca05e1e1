package configloader

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

// aliasFile is a top-level alias as written in a config file.
type aliasFile struct {
	Command    string          `mapstructure:"command"`
	And        []string        `mapstructure:"and" validate:"dive,required"`
	Or         []string        `mapstructure:"or" validate:"dive,required"`
	SubAliases []subAliasFile  `mapstructure:"sub_aliases" validate:"unique=Name,dive"`
	Expansions []expansionFile `mapstructure:"expansions" validate:"unique=Key,dive"`
}

type subAliasFile struct {
	Name       string         `mapstructure:"name" validate:"required"`
	Command    string         `mapstructure:"command"`
	And        []string       `mapstructure:"and" validate:"dive,required"`
	Or         []string       `mapstructure:"or" validate:"dive,required"`
	SubAliases []subAliasFile `mapstructure:"sub_aliases" validate:"unique=Name,dive"`
}

type expansionFile struct {
	Key   string `mapstructure:"key" validate:"required"`
	Value string `mapstructure:"value"`
}

type settingsFile struct {
	ForwardArgs bool `mapstructure:"forward_args"`
	ExpandArgs  bool `mapstructure:"expand_args"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
	})
	return v
}

// decode copies a generic tree into out, rejecting unknown keys.
func decode(input, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.ComposeDecodeHookFunc(scalarStringHook, commandShorthandHook, expansionTableHook),
		ErrorUnused: true,
		Result:      out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// scalarStringHook lets unquoted numbers and booleans stand in for strings,
// so YAML `name: 1` names the sub-alias "1".
func scalarStringHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	switch v := data.(type) {
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	}
	return data, nil
}

// commandShorthandHook turns `name = "cmd"` into `name = { command = "cmd" }`.
func commandShorthandHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() == reflect.String && to == reflect.TypeOf(aliasFile{}) {
		return map[string]any{"command": data}, nil
	}
	return data, nil
}

// expansionTableHook accepts `expansions = { key = "value" }` next to the
// list form `[[x.expansions]] key = ... value = ...`.
func expansionTableHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.Map || to != reflect.TypeOf([]expansionFile{}) {
		return data, nil
	}

	table, ok := data.(map[string]any)
	if !ok {
		return data, nil
	}
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]map[string]any, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, map[string]any{"key": k, "value": table[k]})
	}
	return entries, nil
}

// validationError renders validator failures relative to the alias table.
func validationError(name string, err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return invalidAlias([]string{name}, err.Error())
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "unique":
			msgs = append(msgs, fmt.Sprintf("duplicate %s in %s", strings.ToLower(fe.Param()), field))
		default:
			msgs = append(msgs, fmt.Sprintf("%s fails %q", field, fe.Tag()))
		}
	}
	return invalidAlias([]string{name}, strings.Join(msgs, "; "))
}
