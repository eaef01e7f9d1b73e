package epsg

import (
	"github.com/gogo/protobuf/proto"
)

// definitionRecord is the stored form of a Definition.
type definitionRecord struct {
	Code       string        `protobuf:"bytes,1,opt,name=code,proto3" json:"code,omitempty"`
	Name       string        `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Kind       string        `protobuf:"bytes,3,opt,name=kind,proto3" json:"kind,omitempty"`
	Axes       []*axisRecord `protobuf:"bytes,4,rep,name=axes,proto3" json:"axes,omitempty"`
	Area       []float64     `protobuf:"fixed64,5,rep,packed,name=area,proto3" json:"area,omitempty"`
	Proj       string        `protobuf:"bytes,6,opt,name=proj,proto3" json:"proj,omitempty"`
	Pipeline   string        `protobuf:"bytes,7,opt,name=pipeline,proto3" json:"pipeline,omitempty"`
	Method     string        `protobuf:"bytes,8,opt,name=method,proto3" json:"method,omitempty"`
	Deprecated bool          `protobuf:"varint,9,opt,name=deprecated,proto3" json:"deprecated,omitempty"`
}

func (m *definitionRecord) Reset()         { *m = definitionRecord{} }
func (m *definitionRecord) String() string { return proto.CompactTextString(m) }
func (*definitionRecord) ProtoMessage()    {}

type axisRecord struct {
	Name      string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Direction string `protobuf:"bytes,2,opt,name=direction,proto3" json:"direction,omitempty"`
	Unit      string `protobuf:"bytes,3,opt,name=unit,proto3" json:"unit,omitempty"`
}

func (m *axisRecord) Reset()         { *m = axisRecord{} }
func (m *axisRecord) String() string { return proto.CompactTextString(m) }
func (*axisRecord) ProtoMessage()    {}

func marshalDefinition(d *Definition) ([]byte, error) {
	rec := &definitionRecord{
		Code:       d.Code,
		Name:       d.Name,
		Kind:       d.Kind,
		Area:       d.Area,
		Proj:       d.Proj,
		Pipeline:   d.Pipeline,
		Method:     d.Method,
		Deprecated: d.Deprecated,
	}
	for _, a := range d.Axes {
		rec.Axes = append(rec.Axes, &axisRecord{Name: a.Name, Direction: a.Direction, Unit: a.Unit})
	}
	return proto.Marshal(rec)
}

func unmarshalDefinition(data []byte) (*Definition, error) {
	rec := &definitionRecord{}
	if err := proto.Unmarshal(data, rec); err != nil {
		return nil, err
	}
	d := &Definition{
		Code:       rec.Code,
		Name:       rec.Name,
		Kind:       rec.Kind,
		Area:       rec.Area,
		Proj:       rec.Proj,
		Pipeline:   rec.Pipeline,
		Method:     rec.Method,
		Deprecated: rec.Deprecated,
	}
	for _, a := range rec.Axes {
		d.Axes = append(d.Axes, Axis{Name: a.Name, Direction: a.Direction, Unit: a.Unit})
	}
	return d, nil
}
