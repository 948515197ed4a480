// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package serializer

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strings"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/NVIDIA/componenthost/pkg/defaults"
	"github.com/NVIDIA/componenthost/pkg/k8s/client"
)

// ConfigMapURIScheme prefixes ConfigMap references: cm://namespace/name,
// optionally followed by /key to select one data entry.
const ConfigMapURIScheme = "cm://"

// defaultConfigMapKeys are tried in order when the URI names no key.
var defaultConfigMapKeys = []string{"settings.yaml", "settings.yml", "settings.json"}

// ConfigMapReader reads documents stored in Kubernetes ConfigMap data.
type ConfigMapReader struct {
	client client.Interface
}

// ConfigMapReaderOption configures a ConfigMapReader.
type ConfigMapReaderOption func(*ConfigMapReader)

// WithKubeClient uses c instead of the process-wide client.
func WithKubeClient(c client.Interface) ConfigMapReaderOption {
	return func(r *ConfigMapReader) {
		r.client = c
	}
}

// NewConfigMapReader creates a ConfigMapReader. Without WithKubeClient the
// client is obtained from client.GetKubeClient on first read.
func NewConfigMapReader(options ...ConfigMapReaderOption) *ConfigMapReader {
	r := &ConfigMapReader{}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// ReadWithContext fetches the ConfigMap named by uri and returns the selected
// data entry and its format, taken from the entry's extension. When the URI
// names no key, the first of settings.yaml, settings.yml and settings.json
// present is used, or the only entry if there is exactly one.
func (r *ConfigMapReader) ReadWithContext(ctx context.Context, uri string) ([]byte, Format, error) {
	namespace, name, key, err := parseConfigMapURI(uri)
	if err != nil {
		return nil, "", err
	}

	kube := r.client
	if kube == nil {
		if kube, _, err = client.GetKubeClient(); err != nil {
			return nil, "", fmt.Errorf("failed to get kubernetes client: %w", err)
		}
	}

	readCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapReadTimeout)
	defer cancel()

	cm, err := kube.CoreV1().ConfigMaps(namespace).Get(readCtx, name, metav1.GetOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("failed to get ConfigMap %s/%s: %w", namespace, name, err)
	}

	if key == "" {
		key, err = selectConfigMapKey(cm.Data)
		if err != nil {
			return nil, "", fmt.Errorf("ConfigMap %s/%s: %w", namespace, name, err)
		}
	}
	content, ok := cm.Data[key]
	if !ok {
		return nil, "", fmt.Errorf("ConfigMap %s/%s has no key %q", namespace, name, key)
	}

	slog.Debug("read ConfigMap",
		"namespace", namespace,
		"name", name,
		"key", key,
		"resourceVersion", cm.ResourceVersion)
	return []byte(content), formatFromKey(key), nil
}

func selectConfigMapKey(data map[string]string) (string, error) {
	for _, k := range defaultConfigMapKeys {
		if _, ok := data[k]; ok {
			return k, nil
		}
	}
	if len(data) == 1 {
		for k := range data {
			return k, nil
		}
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return "", fmt.Errorf("cannot choose a data key from %v, name one with %snamespace/name/key",
		keys, ConfigMapURIScheme)
}

// formatFromKey picks JSON for .json keys and YAML for everything else.
// YAML decoding also accepts JSON content.
func formatFromKey(key string) Format {
	if strings.EqualFold(path.Ext(key), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

func isConfigMap(uri string) bool {
	return strings.HasPrefix(uri, ConfigMapURIScheme)
}

// parseConfigMapURI splits cm://namespace/name[/key].
func parseConfigMapURI(uri string) (namespace, name, key string, err error) {
	if !isConfigMap(uri) {
		return "", "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, ConfigMapURIScheme), "/", 3)
	if len(parts) < 2 {
		return "", "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])
	if len(parts) == 3 {
		key = strings.TrimSpace(parts[2])
		if key == "" {
			return "", "", "", fmt.Errorf("invalid ConfigMap URI: key cannot be empty")
		}
	}

	if namespace == "" {
		return "", "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}
	return namespace, name, key, nil
}
