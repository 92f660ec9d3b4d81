// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package opensearch

const queryPeopleSource = `{
  "size": {{ .Size }},
  "query": {
    {{- if .Query }}
    "multi_match": {
      "query": {{ .Query | quote }},
      "fields": ["name^2", "text"],
      "type": "best_fields",
      "operator": "or"
    }
    {{- else }}
    "match_all": {}
    {{- end }}
  },
  "sort": [
    {"_score": {"order": "desc"}},
    {"_id": "asc"}
  ]
}`
