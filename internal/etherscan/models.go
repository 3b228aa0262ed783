package etherscan

import "encoding/json"

// envelope is the outer JSON object every Etherscan endpoint responds with.
// Status is "1" on success and "0" on failure or empty result sets.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// TxRecord is a raw transfer record as returned by the account module
// (action=txlist for ETH transfers, action=tokentx for token transfer
// events). Numeric fields are strings: usually plain decimal, occasionally
// hex-prefixed, so they are kept opaque here and parsed by the consumer.
type TxRecord struct {
	Hash            string `json:"hash"`
	TimeStamp       string `json:"timeStamp"`
	From            string `json:"from"`
	To              string `json:"to"`
	Value           string `json:"value"`
	GasPrice        string `json:"gasPrice"`
	GasUsed         string `json:"gasUsed"`
	ContractAddress string `json:"contractAddress"`
	TokenSymbol     string `json:"tokenSymbol"`
	TokenDecimal    string `json:"tokenDecimal"`
}
