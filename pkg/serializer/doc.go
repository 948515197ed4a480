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

// Package serializer encodes command output and decodes settings documents.
//
// # Formats
//
// JSON and YAML are supported in both directions. Table is write-only: a
// slice of structs renders as one row per element, with a column per
// exported scalar field; anything else is flattened into FIELD/VALUE pairs.
//
// # Writing
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, decisions); err != nil {
//	    return err
//	}
//
// An empty path, or one that cannot be created, writes to stdout.
//
// # Reading
//
//	doc, err := serializer.FromFile[settings.Document]("course.yaml")
//
// The format is taken from the extension (.json, .yaml, .yml). HTTP(S)
// URLs are fetched with HttpReader, which uses the timeouts in
// pkg/defaults. ConfigMap URIs (cm://namespace/name[/key]) are read with
// ConfigMapReader through the cluster client from pkg/k8s/client; the data
// key's extension picks the format.
package serializer
