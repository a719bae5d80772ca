package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"resume-styler/resume/contract"
	"resume-styler/resume/model"
)

// loadRecord reads a JSON or YAML record file and applies the same
// validation and cleanup as the HTTP render endpoint.
func loadRecord(path string) (model.ResumeRecord, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.ResumeRecord{}, fmt.Errorf("read record: %w", err)
	}
	if isYAML(path) {
		raw, err = yamlToJSON(raw)
		if err != nil {
			return model.ResumeRecord{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	rec, err := model.DecodeRecord(raw)
	if err != nil {
		return model.ResumeRecord{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return contract.Edited(rec), nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func yamlToJSON(raw []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return json.Marshal(doc)
}

// marshalRecord encodes rec as YAML when path ends in .yaml or .yml and as
// indented JSON otherwise.
func marshalRecord(rec model.ResumeRecord, path string) ([]byte, error) {
	if isYAML(path) {
		return yaml.Marshal(rec)
	}
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
