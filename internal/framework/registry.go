package framework

import "sync"

// Registry holds the command groups in registration order.
// It is written during startup and read-only once sealed.
type Registry struct {
	mu      sync.Mutex
	sealed  bool
	groups  []*Group
	names   map[string]struct{}
	aliases map[string]*Command
	owned   map[*Command]struct{}
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		names:   make(map[string]struct{}),
		aliases: make(map[string]*Command),
		owned:   make(map[*Command]struct{}),
	}
}

// Register validates a group and appends it to the registry.
// Nothing is registered when validation fails.
func (r *Registry) Register(g *Group) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if g == nil || g.Name == "" {
		return &RegistrationError{Err: ErrInvalidDescriptor}
	}
	if r.sealed {
		return &RegistrationError{Group: g.Name, Err: ErrRegistrySealed}
	}

	members := g.Commands
	if g.DefaultCommand != nil && !containsCommand(members, g.DefaultCommand) {
		members = append(append([]*Command(nil), members...), g.DefaultCommand)
	}

	lookup := make(map[string]*Command)
	newAliases := make(map[string]*Command)
	for _, cmd := range members {
		if cmd == nil || cmd.Name == "" || cmd.Handler == nil {
			return &RegistrationError{Group: g.Name, Err: ErrInvalidDescriptor}
		}
		for _, alias := range cmd.Aliases {
			if _, ok := r.aliases[alias]; ok {
				return &RegistrationError{Group: g.Name, Key: alias, Err: ErrDuplicateAlias}
			}
			if _, ok := newAliases[alias]; ok {
				return &RegistrationError{Group: g.Name, Key: alias, Err: ErrDuplicateAlias}
			}
		}
		if _, ok := r.owned[cmd]; ok {
			return &RegistrationError{Group: g.Name, Key: cmd.Name, Err: ErrDuplicateName}
		}
		if _, ok := lookup[cmd.Name]; ok {
			return &RegistrationError{Group: g.Name, Key: cmd.Name, Err: ErrDuplicateName}
		}
		lookup[cmd.Name] = cmd
		for _, alias := range cmd.Aliases {
			if _, ok := lookup[alias]; ok {
				return &RegistrationError{Group: g.Name, Key: alias, Err: ErrDuplicateName}
			}
			newAliases[alias] = cmd
			lookup[alias] = cmd
		}
	}
	if _, ok := r.names[g.Name]; ok {
		return &RegistrationError{Group: g.Name, Key: g.Name, Err: ErrDuplicateGroup}
	}
	if g.IsRoot() {
		for _, existing := range r.groups {
			if existing.IsRoot() {
				return &RegistrationError{Group: g.Name, Err: ErrDuplicateRootGroup}
			}
		}
	}

	for _, cmd := range members {
		cmd.group = g
		r.owned[cmd] = struct{}{}
	}
	for alias, cmd := range newAliases {
		r.aliases[alias] = cmd
	}
	g.lookup = lookup
	r.names[g.Name] = struct{}{}
	r.groups = append(r.groups, g)
	return nil
}

// Groups returns a snapshot of the registered groups in registration order.
func (r *Registry) Groups() []*Group {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*Group, len(r.groups))
	copy(result, r.groups)
	return result
}

// Buckets returns the distinct buckets used by registered commands, in
// registration order.
func (r *Registry) Buckets() []*Bucket {
	r.mu.Lock()
	defer r.mu.Unlock()

	var buckets []*Bucket
	seen := make(map[*Bucket]struct{})
	for _, g := range r.groups {
		members := g.Commands
		if g.DefaultCommand != nil {
			members = append(append([]*Command(nil), members...), g.DefaultCommand)
		}
		for _, cmd := range members {
			if cmd.Bucket == nil {
				continue
			}
			if _, ok := seen[cmd.Bucket]; ok {
				continue
			}
			seen[cmd.Bucket] = struct{}{}
			buckets = append(buckets, cmd.Bucket)
		}
	}
	return buckets
}

// root returns the prefix-less group, if any.
func (r *Registry) root() *Group {
	for _, g := range r.groups {
		if g.IsRoot() {
			return g
		}
	}
	return nil
}

// seal forbids further registration.
func (r *Registry) seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

func containsCommand(cmds []*Command, target *Command) bool {
	for _, c := range cmds {
		if c == target {
			return true
		}
	}
	return false
}
