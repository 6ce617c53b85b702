/*
 Copyright 2024 Qiniu Cloud (qiniu.com).

 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package util

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/qiniu/x/log"
	"github.com/qiniu/x/xlog"
)

// FileExists returns the absolute path of path and whether it exists.
func FileExists(path string) (absPath string, exist bool) {
	fileAbs, err := filepath.Abs(path)
	if err != nil {
		log.Warnf("failed to get absolute path of %s: %v", path, err)
		return "", false
	}

	_, err = os.Stat(fileAbs)
	if err != nil {
		return "", false
	}

	return fileAbs, true
}

type contextKey string

// EventGUIDKey is the key for the event GUID in the context.
const EventGUIDKey contextKey = "event_guid"

// WithEventGUID stores guid in ctx, generating one when guid is empty.
func WithEventGUID(ctx context.Context, guid string) context.Context {
	if guid == "" {
		guid = uuid.NewString()[:12]
	}
	return context.WithValue(ctx, EventGUIDKey, guid)
}

// GetEventGUID returns the event GUID stored in ctx, or "unknown".
func GetEventGUID(ctx context.Context) string {
	if guid, ok := ctx.Value(EventGUIDKey).(string); ok {
		return guid
	}
	return "unknown"
}

// FromContext returns a logger tagged with the event GUID in ctx.
func FromContext(ctx context.Context) *xlog.Logger {
	return xlog.New(GetEventGUID(ctx))
}

// FindFileWithExt walks dir and returns the absolute paths of all files
// whose name ends in one of ext.
func FindFileWithExt(dir string, ext []string) ([]string, error) {
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		for _, e := range ext {
			if strings.HasSuffix(info.Name(), e) {
				absPath, err := filepath.Abs(path)
				if err != nil {
					return err
				}
				files = append(files, absPath)
				break
			}
		}
		return nil
	})
	return files, err
}
