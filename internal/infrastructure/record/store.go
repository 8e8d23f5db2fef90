package record

import (
	"context"
	"encoding/json"
	"time"
)

// Collection identifica uma coleção nomeada de registros no store.
// Os nomes seguem o layout persistido do docflow.
type Collection string

const (
	CollectionUsers     Collection = "docflow_users"
	CollectionCompanies Collection = "docflow_companies"
	CollectionDocuments Collection = "docflow_documents"
)

// Store é a primitiva de persistência de coleções ordenadas de registros.
//
// Read retorna todos os registros de uma coleção e nunca falha por coleção
// inexistente (retorna sequência vazia). Write substitui o conjunto
// completo de registros da coleção de forma atômica do ponto de vista do
// chamador. O contrato é compatível com um banco remoto: toda operação
// completa após uma latência simulada, configurável (e zerável).
type Store interface {
	Read(ctx context.Context, collection Collection) ([]json.RawMessage, error)
	Write(ctx context.Context, collection Collection, records []json.RawMessage) error
}

// Latency modela a assimetria de I/O de um banco real: leituras custam a
// metade do atraso das escritas. Write == 0 desliga a simulação.
type Latency struct {
	Write time.Duration
}

// SleepRead aguarda o atraso simulado de leitura
func (l Latency) SleepRead() {
	if l.Write > 0 {
		time.Sleep(l.Write / 2)
	}
}

// SleepWrite aguarda o atraso simulado de escrita
func (l Latency) SleepWrite() {
	if l.Write > 0 {
		time.Sleep(l.Write)
	}
}

// cloneRecords copia registros para que chamadores não compartilhem os
// mesmos buffers com o store
func cloneRecords(records []json.RawMessage) []json.RawMessage {
	if records == nil {
		return []json.RawMessage{}
	}

	out := make([]json.RawMessage, len(records))
	for i, r := range records {
		buf := make(json.RawMessage, len(r))
		copy(buf, r)
		out[i] = buf
	}
	return out
}
