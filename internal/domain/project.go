package domain

// Project represents a portfolio project record in projects.json.
// Records are heterogeneous and hand-edited: a known key holding an
// unexpected type is kept verbatim in Extra instead of failing the load,
// and featured follows loose truth rules ("yes" and 1 count as true).
type Project struct {
	Slug      string
	Title     string
	Featured  bool
	HeroImage string

	Extra map[string]any

	stored keySet
}

var projectFields = []string{"slug", "title", "featured", "hero_image"}

// newProjectKeys are always written for projects built in code.
var newProjectKeys = keySet{"slug": true, "title": true}

// UnmarshalJSON fills the known fields it can and keeps everything else in Extra.
func (p *Project) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data)
	if err != nil {
		return err
	}
	if obj == nil {
		return nil
	}

	stored := make(keySet, len(projectFields))
	for _, k := range projectFields {
		if _, ok := obj[k]; ok {
			stored[k] = true
		}
	}

	var out Project
	out.Slug = takeString(obj, "slug")
	out.Title = takeString(obj, "title")
	out.HeroImage = takeString(obj, "hero_image")
	if v, ok := obj["featured"]; ok {
		out.Featured = truthy(v)
		if _, isBool := v.(bool); isBool {
			delete(obj, "featured")
		}
	}

	// keys still in obj are unknown or carry a value of another type
	if len(obj) > 0 {
		out.Extra = obj
	}
	out.stored = stored
	*p = out
	return nil
}

// MarshalJSON writes the known fields and Extra. Values kept verbatim in
// Extra are written unchanged.
func (p Project) MarshalJSON() ([]byte, error) {
	o := newObject(p.Extra, p.stored, newProjectKeys)
	o.put("slug", p.Slug, p.Slug == "")
	o.put("title", p.Title, p.Title == "")
	o.put("featured", p.Featured, !p.Featured)
	o.put("hero_image", p.HeroImage, p.HeroImage == "")
	return o.encode()
}

// takeString moves obj[key] into the result when it is a string.
func takeString(obj map[string]any, key string) string {
	s, ok := obj[key].(string)
	if ok {
		delete(obj, key)
	}
	return s
}

// Field returns a descriptive field by name, or nil.
func (p Project) Field(name string) any {
	return p.Extra[name]
}

// FindProject returns the project with the given slug, or nil.
func FindProject(projects []Project, slug string) *Project {
	for i := range projects {
		if projects[i].Slug == slug {
			return &projects[i]
		}
	}
	return nil
}

// Featured returns the first featured project, else the first project, else nil.
func Featured(projects []Project) *Project {
	for i := range projects {
		if projects[i].Featured {
			return &projects[i]
		}
	}
	if len(projects) > 0 {
		return &projects[0]
	}
	return nil
}
