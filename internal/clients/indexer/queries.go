package indexer

// GraphQL documents sent to the staking indexer. The query implementation
// lives on the indexer side; these are the boundary contracts only.

const operatorsQuery = `
query Operators {
  operators {
    rows {
      id
      name
      domain_id
      domain_name
      owner_account
      nomination_tax
      minimum_nominator_stake
      status
      total_staked
      total_storage_fund
      total_pool_value
    }
  }
}`

const operatorReturnWindowsQuery = `
query OperatorReturnWindows($operator_id: String!) {
  operator_return_windows(operator_id: $operator_id) {
    d1 { annualized_return window_days }
    d3 { annualized_return window_days }
    d7 { annualized_return window_days }
    d30 { annualized_return window_days }
  }
}`

const nominatorCountQuery = `
query NominatorCount($operator_id: String!) {
  nominator_count(operator_id: $operator_id) {
    count
  }
}`

const positionsQuery = `
query Positions($address: String!) {
  positions(address: $address) {
    rows {
      operator_id
      address
      active_stake
      storage_fee_deposit
      pending_deposit { amount effective_epoch }
      pending_withdrawals { gross_withdrawal_amount unlock_block }
    }
  }
}`

const depositsQuery = `
query Deposits($address: String!, $operator_id: String!, $limit: Int!, $offset: Int!) {
  deposits(address: $address, operator_id: $operator_id, limit: $limit, offset: $offset) {
    rows {
      id
      operator_id
      domain_id
      address
      pending_amount
      pending_storage_fee_deposit
      pending_effective_domain_epoch
      timestamp
      block_height
      extrinsic_ids
      event_ids
    }
    total_count
  }
}`

const withdrawalsQuery = `
query Withdrawals($address: String!, $operator_id: String!, $limit: Int!, $offset: Int!) {
  withdrawals(address: $address, operator_id: $operator_id, limit: $limit, offset: $offset) {
    rows {
      id
      operator_id
      domain_id
      address
      total_withdrawal_amount
      withdrawal_in_shares_amount
      withdrawal_in_shares_domain_epoch
      total_storage_fee_withdrawal
      withdrawal_in_shares_unlock_block
      timestamp
      block_height
      extrinsic_ids
      event_ids
    }
    total_count
  }
}`

const sharePricesByEpochsQuery = `
query SharePrices($operator_id: String!, $domain_id: String!, $epochs: [Int!]!) {
  share_prices(operator_id: $operator_id, domain_id: $domain_id, epochs: $epochs) {
    rows {
      epoch_index
      share_price
    }
  }
}`

const latestSharePricesQuery = `
query LatestSharePrices($operator_id: String!, $limit: Int!) {
  latest_share_prices(operator_id: $operator_id, limit: $limit) {
    rows {
      epoch_index
      share_price
    }
  }
}`
