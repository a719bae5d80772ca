package model

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

// ErrInvalidJSON is returned when the payload is not a JSON document.
var ErrInvalidJSON = errors.New("record is not valid json")

// SchemaError lists every structural problem found in a record payload.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	return "record schema validation failed: " + strings.Join(e.Problems, "; ")
}

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func loadSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	})
	return schema, schemaErr
}

// ValidateJSON checks a raw record payload against the record schema.
func ValidateJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return ErrInvalidJSON
	}
	s, err := loadSchema()
	if err != nil {
		return fmt.Errorf("load record schema: %w", err)
	}
	res, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validate record: %w", err)
	}
	if res.Valid() {
		return nil
	}
	problems := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		problems = append(problems, e.String())
	}
	return &SchemaError{Problems: problems}
}

// DecodeRecord validates a record payload and decodes it. Numbers in text
// fields are kept as written and missing keys decode to empty values.
func DecodeRecord(data []byte) (ResumeRecord, error) {
	if err := ValidateJSON(data); err != nil {
		return ResumeRecord{}, err
	}
	return FromJSON(gjson.ParseBytes(data)), nil
}

// FromJSON reads a record from an already parsed document without validation.
// Unknown keys are ignored and mistyped values are coerced where possible.
func FromJSON(doc gjson.Result) ResumeRecord {
	rec := ResumeRecord{
		Name:         text(doc.Get("name")),
		Address:      text(doc.Get("address")),
		Contact:      text(doc.Get("contact")),
		Objective:    text(doc.Get("objective")),
		CoreSkills:   text(doc.Get("core_skills")),
		Scholarship:  text(doc.Get("scholarship")),
		Languages:    text(doc.Get("languages")),
		Affiliations: text(doc.Get("MoU")),
		Education:    []Education{},
		Experience:   []Experience{},
		Projects:     []Project{},
		Publications: []Publication{},
		Awards:       []Award{},
		References:   []Reference{},
	}
	eachObject(doc.Get("education"), func(o gjson.Result) {
		rec.Education = append(rec.Education, Education{
			Degree:     text(o.Get("degree")),
			University: text(o.Get("university")),
			Year:       text(o.Get("year")),
			Grade:      text(o.Get("grade")),
		})
	})
	eachObject(doc.Get("experience"), func(o gjson.Result) {
		rec.Experience = append(rec.Experience, Experience{
			Company: text(o.Get("company")),
			Role:    text(o.Get("role")),
			Dates:   text(o.Get("dates")),
			Bullets: bullets(o.Get("bullets")),
		})
	})
	eachObject(doc.Get("projects"), func(o gjson.Result) {
		rec.Projects = append(rec.Projects, Project{
			Name:    text(o.Get("name")),
			Tech:    text(o.Get("tech")),
			Role:    text(o.Get("role")),
			Bullets: bullets(o.Get("bullets")),
		})
	})
	eachObject(doc.Get("publications"), func(o gjson.Result) {
		rec.Publications = append(rec.Publications, Publication{
			Title:   text(o.Get("title")),
			Journal: text(o.Get("journal")),
			Year:    text(o.Get("year")),
		})
	})
	eachObject(doc.Get("awards"), func(o gjson.Result) {
		rec.Awards = append(rec.Awards, Award{
			Name: text(o.Get("name")),
			Year: text(o.Get("year")),
		})
	})
	eachObject(doc.Get("references"), func(o gjson.Result) {
		rec.References = append(rec.References, Reference{
			Name:    text(o.Get("name")),
			Title:   text(o.Get("title")),
			Contact: text(o.Get("contact")),
		})
	})
	return rec
}

func eachObject(list gjson.Result, fn func(gjson.Result)) {
	if !list.IsArray() {
		return
	}
	list.ForEach(func(_, item gjson.Result) bool {
		if item.IsObject() {
			fn(item)
		}
		return true
	})
}

func text(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		return v.Raw
	case gjson.True, gjson.False:
		return v.String()
	case gjson.JSON:
		if v.IsArray() {
			parts := make([]string, 0, len(v.Array()))
			for _, item := range v.Array() {
				if s := strings.TrimSpace(text(item)); s != "" {
					parts = append(parts, s)
				}
			}
			return strings.Join(parts, ", ")
		}
	}
	return ""
}

func bullets(v gjson.Result) []string {
	out := []string{}
	if v.IsArray() {
		for _, item := range v.Array() {
			if s := text(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	if s := text(v); s != "" {
		out = append(out, s)
	}
	return out
}
