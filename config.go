package permit

import (
	"strings"

	"github.com/dpup/permit/errors"
	"github.com/dpup/permit/internal/config"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"google.golang.org/grpc/codes"
)

// Filename of the standard configuration file.
const ConfigFile = "permit.yaml"

// Config is a global koanf instance used to access application level
// configuration options.
//
// Config is loaded in the following order (later sources override earlier):
//  1. Auto-discovered permit.yaml (in init())
//  2. Environment variables with PERMIT__ prefix (in init())
//  3. Additional sources loaded via LoadConfigFile() or LoadConfigDefaults()
//
// Environment variable transformation:
//   - PERMIT__RBAC__HIERARCHY → rbac.hierarchy
//   - PERMIT__RBAC__DEBUG_ADDRESS → rbac.debugAddress (underscores become camelCase)
var Config = koanf.New(".")

func init() {
	// Look for a permit.yaml file in the current directory or any parent.
	if cfg := config.SearchForConfig(ConfigFile, "."); cfg != "" {
		if err := Config.Load(file.Provider(cfg), yaml.Parser()); err != nil {
			panic("error loading config: " + err.Error())
		}
	}

	// Load environment variables with the prefix PERMIT__.
	if err := Config.Load(env.Provider("PERMIT__", ".", config.TransformEnv), nil); err != nil {
		panic("error loading env config: " + err.Error())
	}
}

// LoadConfigFile loads additional configuration from a YAML file into the
// global Config instance.
//
// Example:
//
//	permit.LoadConfigFile("./authz.yaml")
//	engine, err := permit.FromConfig()
func LoadConfigFile(path string) {
	if err := Config.Load(file.Provider(path), yaml.Parser()); err != nil {
		panic("error loading config file '" + path + "': " + err.Error())
	}
}

// LoadConfigDefaults loads default configuration values into the global
// Config instance. Call this before FromConfig to provide application
// defaults that can be overridden by files or env vars.
//
// Example:
//
//	permit.LoadConfigDefaults(map[string]interface{}{
//	    "rbac.hierarchy": []string{"viewer", "editor", "owner"},
//	})
func LoadConfigDefaults(defaults map[string]interface{}) {
	if err := Config.Load(confmap.Provider(defaults, "."), nil); err != nil {
		panic("error loading config defaults: " + err.Error())
	}
}

// FromConfig builds an engine from the global Config instance. See
// EngineFromKoanf for the expected keys.
func FromConfig(opts ...Option) (*Engine, error) {
	return EngineFromKoanf(Config, opts...)
}

// EngineFromKoanf builds an engine from a koanf instance. Expected keys:
//
//	rbac:
//	  hierarchy: [guest, client, developer, manager, admin]
//	  catalog:
//	    guest: ["read:projects", "read:tasks"]
//	    manager: ["approve:projects"]
//
// Role, action, and resource names are normalized (snake_case, resources
// pluralized) before validation, so "aiInsight" resolves to "ai_insights".
// Unknown names fail with a suggestion for the nearest enumerated value —
// at load time, never at decision time. Predicates cannot be expressed in
// configuration; register them through opts.
func EngineFromKoanf(k *koanf.Koanf, opts ...Option) (*Engine, error) {
	if !k.Exists("rbac.hierarchy") {
		return nil, errors.Codef(codes.InvalidArgument, "permit: config missing 'rbac.hierarchy'")
	}

	roles := make([]Role, 0)
	for _, name := range k.Strings("rbac.hierarchy") {
		roles = append(roles, Role(name))
	}

	catalog := Catalog{}
	for roleName, entries := range k.StringsMap("rbac.catalog") {
		role := Role(roleName)
		perms := PermissionSet{}
		for _, entry := range entries {
			p, err := parseConfigPermission(entry)
			if err != nil {
				return nil, errors.WrapPrefix(err, "permit: bad catalog entry for role '"+roleName+"'", 0)
			}
			perms.Add(p)
		}
		catalog[role] = perms
	}

	base := []Option{WithHierarchy(roles...), WithCatalog(catalog)}
	return New(append(base, opts...)...)
}

// parseConfigPermission parses a configured "action:resource" string with
// normalization and did-you-mean suggestions. Stricter callers that want
// the canonical form only should use ParsePermission.
func parseConfigPermission(s string) (Permission, error) {
	action, resource, ok := strings.Cut(s, ":")
	if !ok {
		return Permission{}, errors.Codef(codes.InvalidArgument, "'%s' is not a valid permission, want 'action:resource'", s)
	}

	a := Action(config.NormalizeAction(action))
	if !ValidAction(a) {
		return Permission{}, errors.Codef(codes.InvalidArgument, "'%s' is not a known action.%s",
			action, config.SuggestionText(string(a), actionNames()))
	}
	// Snake-case the resource first; pluralize only when that alone doesn't
	// match, so enumerated names like "content" aren't mangled.
	r := Resource(config.NormalizeAction(resource))
	if !ValidResource(r) {
		r = Resource(config.NormalizeResource(resource))
	}
	if !ValidResource(r) {
		return Permission{}, errors.Codef(codes.InvalidArgument, "'%s' is not a known resource.%s",
			resource, config.SuggestionText(string(r), resourceNames()))
	}
	return Permission{Action: a, Resource: r}, nil
}

func actionNames() []string {
	actions := Actions()
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = string(a)
	}
	return out
}

func resourceNames() []string {
	resources := Resources()
	out := make([]string, len(resources))
	for i, r := range resources {
		out[i] = string(r)
	}
	return out
}
