package fragment

import (
	"bytes"
	"encoding/json"
	"time"

	"fragments/internal/domain/entity"

	"github.com/pkg/errors"
)

// descriptor is the fragment metadata object returned by the store.
type descriptor struct {
	ID      string    `json:"id" validate:"required"`
	OwnerID string    `json:"ownerId"`
	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
	Type    string    `json:"type"`
	Size    int       `json:"size"`
}

// UnmarshalJSON also accepts the deprecated bare-id form and normalizes it to {id}.
func (d *descriptor) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var id string
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return errors.Wrap(err, "decode fragment id")
		}
		*d = descriptor{ID: id}

		return nil
	}

	type plain descriptor
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return errors.Wrap(err, "decode fragment")
	}
	*d = descriptor(p)

	return nil
}

func (d descriptor) toEntity() entity.Fragment {
	return entity.Fragment{
		ID:      d.ID,
		OwnerID: d.OwnerID,
		Type:    entity.FragmentType(d.Type),
		Size:    d.Size,
		Created: d.Created,
		Updated: d.Updated,
	}
}

// listResponse uses a pointer so a missing "fragments" field is told apart from an empty list.
type listResponse struct {
	Status    string        `json:"status"`
	Fragments *[]descriptor `json:"fragments" validate:"required,dive"`
}

type fragmentResponse struct {
	Status   string      `json:"status"`
	Fragment *descriptor `json:"fragment" validate:"required"`
}

type errorResponse struct {
	Status string `json:"status"`
	Error  struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
