package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "LPMATH"

// MintConfig holds settings for sizing a single position.
type MintConfig struct {
	Amount0   string
	Amount1   string
	PriceLow  float64
	PriceCur  float64
	PriceUpp  float64
	Decimals0 uint8
	Decimals1 uint8
	Exact     bool
	LogLevel  string
}

// BatchConfig holds settings for the batch command.
type BatchConfig struct {
	Inputs   []string
	Out      string
	Errors   string
	Decimals uint8
	Exact    bool
	LogLevel string
}

// ConvertConfig holds the single price point to convert. Exactly one of
// HasPrice, HasTick and HasSqrtPrice is expected to be set.
type ConvertConfig struct {
	Price        float64
	Tick         int
	SqrtPriceX96 string
	TickSpacing  int
	HasPrice     bool
	HasTick      bool
	HasSqrtPrice bool
	LogLevel     string
}

// RangeConfig holds a value and an unordered sqrt price range, used by the
// liquidity and amounts commands.
type RangeConfig struct {
	Value    string
	PA       string
	PB       string
	LogLevel string
}

// LoadMint merges config file, environment variables, and flags into MintConfig.
func LoadMint(cfgFile string, flags *pflag.FlagSet) (MintConfig, error) {
	v, err := load(cfgFile, flags, map[string]interface{}{
		"decimals0": 18,
		"decimals1": 18,
		"exact":     false,
		"log-level": "info",
	})
	if err != nil {
		return MintConfig{}, err
	}

	decimals0, err := getDecimals(v, "decimals0")
	if err != nil {
		return MintConfig{}, err
	}
	decimals1, err := getDecimals(v, "decimals1")
	if err != nil {
		return MintConfig{}, err
	}

	return MintConfig{
		Amount0:   v.GetString("amount0"),
		Amount1:   v.GetString("amount1"),
		PriceLow:  v.GetFloat64("price-low"),
		PriceCur:  v.GetFloat64("price-cur"),
		PriceUpp:  v.GetFloat64("price-upp"),
		Decimals0: decimals0,
		Decimals1: decimals1,
		Exact:     v.GetBool("exact"),
		LogLevel:  v.GetString("log-level"),
	}, nil
}

// LoadBatch merges config file, environment variables, and flags into BatchConfig.
func LoadBatch(cfgFile string, flags *pflag.FlagSet) (BatchConfig, error) {
	v, err := load(cfgFile, flags, map[string]interface{}{
		"out":       "-",
		"decimals":  18,
		"exact":     false,
		"log-level": "info",
	})
	if err != nil {
		return BatchConfig{}, err
	}

	decimals, err := getDecimals(v, "decimals")
	if err != nil {
		return BatchConfig{}, err
	}

	return BatchConfig{
		Inputs:   getStringSlice(v, "in"),
		Out:      v.GetString("out"),
		Errors:   v.GetString("errors"),
		Decimals: decimals,
		Exact:    v.GetBool("exact"),
		LogLevel: v.GetString("log-level"),
	}, nil
}

// LoadConvert merges config file, environment variables, and flags into ConvertConfig.
func LoadConvert(cfgFile string, flags *pflag.FlagSet) (ConvertConfig, error) {
	v, err := load(cfgFile, flags, map[string]interface{}{
		"log-level": "info",
	})
	if err != nil {
		return ConvertConfig{}, err
	}

	return ConvertConfig{
		Price:        v.GetFloat64("price"),
		Tick:         v.GetInt("tick"),
		SqrtPriceX96: v.GetString("sqrt-price-x96"),
		TickSpacing:  v.GetInt("tick-spacing"),
		HasPrice:     v.IsSet("price"),
		HasTick:      v.IsSet("tick"),
		HasSqrtPrice: v.IsSet("sqrt-price-x96"),
		LogLevel:     v.GetString("log-level"),
	}, nil
}

// LoadRange merges config file, environment variables, and flags into
// RangeConfig, reading the value from valueKey.
func LoadRange(cfgFile string, flags *pflag.FlagSet, valueKey string) (RangeConfig, error) {
	v, err := load(cfgFile, flags, map[string]interface{}{
		"log-level": "info",
	})
	if err != nil {
		return RangeConfig{}, err
	}

	return RangeConfig{
		Value:    v.GetString(valueKey),
		PA:       v.GetString("pa"),
		PB:       v.GetString("pb"),
		LogLevel: v.GetString("log-level"),
	}, nil
}

func load(cfgFile string, flags *pflag.FlagSet, defaults map[string]interface{}) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}

func getDecimals(v *viper.Viper, key string) (uint8, error) {
	val := v.GetInt(key)
	if val < 0 || val > 77 {
		return 0, fmt.Errorf("%s must be between 0 and 77, got %d", key, val)
	}
	return uint8(val), nil
}

func getStringSlice(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}

	val := v.Get(key)
	switch typed := val.(type) {
	case []string:
		return cleanStrings(typed)
	case string:
		return splitAndClean(typed)
	case []interface{}:
		items := make([]string, 0, len(typed))
		for _, item := range typed {
			items = append(items, fmt.Sprintf("%v", item))
		}
		return cleanStrings(items)
	default:
		return nil
	}
}

func splitAndClean(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	return cleanStrings(parts)
}

func cleanStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
