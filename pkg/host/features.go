package host

// Initer is implemented by component instances that want a hook after
// construction, before the first detection pass.
type Initer interface {
	OnInit()
}

// InitFeature invokes the instance's OnInit hook, if implemented.
func InitFeature(instance any, def Definition) {
	if i, ok := instance.(Initer); ok {
		i.OnInit()
	}
}

// TagAware is implemented by instances that want the tag they were mounted
// on reflected onto them.
type TagAware interface {
	SetHostTag(tag string)
}

// ReflectTagFeature copies the definition tag onto instances implementing
// TagAware.
func ReflectTagFeature(instance any, def Definition) {
	if a, ok := instance.(TagAware); ok {
		a.SetHostTag(def.Tag)
	}
}
